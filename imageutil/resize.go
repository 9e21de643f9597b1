package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// cellAspect compensates for the aspect ratio of a monospaced glyph
// cell, which is roughly twice as tall as it is wide.
const cellAspect = 0.5

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom, the highest quality choice
	// for downscaling to a small cell grid.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

func scalerFor(interp Interpolation) draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	dstRect := image.Rect(0, 0, width, height)
	scalerFor(interp).Scale(dst.RGBA, dstRect, img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// ResizeToWidth resizes an image to the specified width while
// maintaining aspect ratio.
func ResizeToWidth(img *RGBAImage, width int, interp Interpolation) *RGBAImage {
	aspectRatio := float64(img.Width()) / float64(img.Height())
	height := int(float64(width) / aspectRatio)
	return Resize(img, width, height, interp)
}

// ResizeForGlyphs resamples an image for glyph conversion: width cell
// columns, and floor(width * aspect * 0.5) rows, where aspect is the
// source height/width ratio. The 0.5 factor compensates for the glyph
// cell being about twice as tall as it is wide. The resulting grid is
// always at least one row tall.
func ResizeForGlyphs(img *RGBAImage, width int) *RGBAImage {
	aspect := float64(img.Height()) / float64(img.Width())
	height := int(float64(width) * aspect * cellAspect)
	if height < 1 {
		height = 1
	}
	return Resize(img, width, height, InterpolationArea)
}
