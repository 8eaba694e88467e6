package imagepkg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/disintegration/imaging"
	"github.com/youruser/quizcard/internal/util"
	_ "golang.org/x/image/webp"
)

// DownloadImage downloads an image from url and decodes it. The fetch gives up
// after timeout.
func DownloadImage(ctx context.Context, url string, timeout time.Duration) (image.Image, error) {
	body, err := util.GetBytes(ctx, url, timeout)
	if err != nil {
		return nil, err
	}
	return DecodeImage(body)
}

// MaxDecodePixels bounds the declared size of any decoded image. A few KB of
// compressed data can declare a canvas large enough to exhaust memory.
const MaxDecodePixels = 64 << 20

var ErrImageTooLarge = errors.New("image too large")

// DecodeImage decodes JPEG, PNG, GIF, BMP, TIFF or WebP bytes, applying the
// EXIF orientation phone cameras record. The header is checked against
// MaxDecodePixels before any pixel data is read.
func DecodeImage(b []byte) (image.Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxDecodePixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}
	return imaging.Decode(bytes.NewReader(b), imaging.AutoOrientation(true))
}
