package imagepkg

import (
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// textBlock is a run of pre-split lines laid out top to bottom. The block is
// size*n + spacing*(n-1) tall; each line is centred horizontally.
type textBlock struct {
	text    string
	size    int
	spacing int
	yAdj    int
	first   color.Color
	rest    color.Color
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

func (b textBlock) height(lines int) int {
	return lines*b.size + (lines-1)*b.spacing
}

// draw centres the block vertically in area, shifted by yAdj. Text is never
// reflowed: lines wider than area are clipped by the canvas, not wrapped.
func (b textBlock) draw(dc *gg.Context, face font.Face, area image.Rectangle) {
	if b.text == "" || area.Empty() {
		return
	}

	drawText(dc, face, func() {
		lines := splitLines(b.text)
		top := area.Min.Y + (area.Dy()-b.height(len(lines)))/2 + b.yAdj
		ascent := float64(face.Metrics().Ascent.Round())
		cx := float64(area.Min.X) + float64(area.Dx())/2

		for i, line := range lines {
			if i == 0 || b.rest == nil {
				dc.SetColor(b.first)
			} else {
				dc.SetColor(b.rest)
			}
			y := float64(top + i*(b.size+b.spacing))
			// ax=0.5 puts each line's midpoint on the area centre (x=540 for
			// the bars); a left edge there would push every line right of centre.
			dc.DrawStringAnchored(line, cx, y+ascent, 0.5, 0)
		}
	})
}

// drawText sets face on dc and runs fn. A panic while rasterising glyphs
// leaves the area without text instead of failing the whole card.
func drawText(dc *gg.Context, face font.Face, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.Error().Println("draw text:", r)
		}
	}()
	dc.SetFontFace(face)
	fn()
}

func fillRect(dc *gg.Context, r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	dc.SetColor(c)
	dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	dc.Fill()
}

// strokeRect outlines r with a border of the given width drawn inside r.
func strokeRect(dc *gg.Context, r image.Rectangle, width int, c color.Color) {
	fillRect(dc, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), c)
	fillRect(dc, image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), c)
	fillRect(dc, image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), c)
	fillRect(dc, image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), c)
}
