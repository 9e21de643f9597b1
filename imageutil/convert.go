package imageutil

import "github.com/wmorgan/img2glyph"

// ToPixelBuffer flattens an RGBAImage into the raster-order RGBA buffer
// the rendering pipeline consumes. The image's stride padding, if any,
// is dropped.
func ToPixelBuffer(img *RGBAImage) img2glyph.PixelBuffer {
	width, height := img.Width(), img.Height()
	buf := img2glyph.NewPixelBuffer(width, height)

	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		copy(buf[y*width*4:], row)
	}

	return buf
}

// FromPixelBuffer builds an RGBAImage from a raster-order RGBA buffer.
// Useful for saving intermediate filter output as a PNG when debugging
// a conversion.
func FromPixelBuffer(buf img2glyph.PixelBuffer, width, height int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+width*4], buf[y*width*4:(y+1)*width*4])
	}
	return img
}
