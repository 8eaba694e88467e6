package imagepkg

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/youruser/quizcard/internal/style"
)

// CellSize is the size of one of the four grid cells.
func CellSize(s style.Style) image.Point {
	return image.Pt(style.CanvasWidth/2, s.CellHeight())
}

// CellOrigin is the top-left corner of cell i in row-major order.
func CellOrigin(s style.Style, i int) image.Point {
	cell := CellSize(s)
	return image.Pt((i%2)*cell.X, s.TopH+(i/2)*cell.Y)
}

// CenterCropRect returns the largest sub-rectangle of b with the aspect ratio
// target.X:target.Y, trimmed equally from both sides of the longer axis.
// Integer arithmetic keeps the result exact: the new side is
// floor(other * ratio) and the offset is (old - new) / 2.
func CenterCropRect(b image.Rectangle, target image.Point) image.Rectangle {
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 || target.X <= 0 || target.Y <= 0 {
		return b
	}

	switch {
	case w*target.Y > h*target.X:
		nw := max(h*target.X/target.Y, 1)
		off := (w - nw) / 2
		return image.Rect(b.Min.X+off, b.Min.Y, b.Min.X+off+nw, b.Max.Y)
	case w*target.Y < h*target.X:
		nh := max(w*target.Y/target.X, 1)
		off := (h - nh) / 2
		return image.Rect(b.Min.X, b.Min.Y+off, b.Max.X, b.Min.Y+off+nh)
	}
	return b
}

// ZoomRect returns the centred region of b of size (w/zoom, h/zoom),
// truncated to whole pixels. zoom <= 1 returns b.
func ZoomRect(b image.Rectangle, zoom float64) image.Rectangle {
	if zoom <= 1.0 {
		return b
	}
	w, h := b.Dx(), b.Dy()
	zw := max(int(float64(w)/zoom), 1)
	zh := max(int(float64(h)/zoom), 1)
	left := (w - zw) / 2
	top := (h - zh) / 2
	return image.Rect(b.Min.X+left, b.Min.Y+top, b.Min.X+left+zw, b.Min.Y+top+zh)
}

func CenterCrop(img image.Image, target image.Point) *image.NRGBA {
	return imaging.Crop(img, CenterCropRect(img.Bounds(), target))
}

func Zoom(img image.Image, zoom float64) *image.NRGBA {
	return imaging.Crop(img, ZoomRect(img.Bounds(), zoom))
}
