package imagepkg

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

const NoPhotoText = "no photo"

var (
	PlaceholderBackground = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	PlaceholderForeground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// CreatePlaceholder draws a flat cell-sized image with centred text,
// used in place of a missing portrait.
func CreatePlaceholder(width, height int, fonts *Fonts, fontSize int, text string) image.Image {
	dc := gg.NewContext(width, height)
	fillRect(dc, image.Rect(0, 0, width, height), PlaceholderBackground)

	textBlock{
		text:  text,
		size:  fontSize,
		first: PlaceholderForeground,
	}.draw(dc, fonts.Face(fontSize), image.Rect(0, 0, width, height))

	return dc.Image()
}
