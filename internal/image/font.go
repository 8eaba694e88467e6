package imagepkg

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts hands out faces of one TrueType font. The parsed font is read-only and
// may be shared by concurrent renders; faces are not, so each caller gets its own.
type Fonts struct {
	font *truetype.Font
}

// LoadFonts parses the font at path, or the embedded Go Regular font when path
// is empty. A font file that cannot be read or parsed leaves Fonts on the
// fixed-size 7x13 bitmap face, so every size renders at 13px.
func LoadFonts(path string) *Fonts {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			l.Warn().Println("font file unavailable, falling back to the fixed-size face:", err)
			return &Fonts{}
		}
		data = b
	}

	f, err := truetype.Parse(data)
	if err != nil {
		l.Warn().Println("parse font, falling back to the fixed-size face:", err)
		return &Fonts{}
	}
	return &Fonts{font: f}
}

// Face returns a face of the given pixel size.
func (f *Fonts) Face(size int) font.Face {
	if f == nil || f.font == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f.font, &truetype.Options{Size: float64(size)})
}

// Scalable reports whether Face honours the requested size.
func (f *Fonts) Scalable() bool {
	return f != nil && f.font != nil
}
