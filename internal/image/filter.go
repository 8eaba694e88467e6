package imagepkg

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/youruser/quizcard/internal/style"
)

var edgeKernel = [9]float64{
	-1, -1, -1,
	-1, 8, -1,
	-1, -1, -1,
}

// ApplyFilter runs the photo filter named by f. The sketch look is a grayscale
// edge map inverted onto white, close to a pencil contour.
func ApplyFilter(img image.Image, f style.PhotoFilter) image.Image {
	switch f {
	case style.FilterGray:
		return imaging.Grayscale(img)
	case style.FilterSketch:
		gray := imaging.Grayscale(img)
		edges := imaging.Convolve3x3(gray, edgeKernel, nil)
		return imaging.AdjustContrast(imaging.Invert(edges), 20)
	default:
		return img
	}
}
