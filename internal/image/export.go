package imagepkg

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/disintegration/imaging"
)

const DefaultQuality = 95

type Format string

const (
	JPEG Format = "jpeg"
	PNG  Format = "png"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "jpg", "jpeg":
		return JPEG, nil
	case "png":
		return PNG, nil
	}
	return "", fmt.Errorf("unsupported image format %q", s)
}

func (f Format) ContentType() string {
	if f == PNG {
		return "image/png"
	}
	return "image/jpeg"
}

func (f Format) Ext() string {
	if f == PNG {
		return ".png"
	}
	return ".jpg"
}

// Encode writes img as f. quality only applies to JPEG; values outside
// 1..100 mean DefaultQuality.
func Encode(w io.Writer, img image.Image, f Format, quality int) error {
	if f == PNG {
		return imaging.Encode(w, img, imaging.PNG)
	}
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}
	return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality))
}
