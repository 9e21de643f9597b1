package img2glyph

import "math"

// Kernel represents a 3x3 convolution kernel with pre-normalized
// weights.
type Kernel struct {
	Values [3][3]float64
}

// GaussianKernel returns the 3x3 Gaussian blur kernel used by the
// unsharp mask, with its weights already divided by the normalizer 16.
func GaussianKernel() Kernel {
	return Kernel{Values: [3][3]float64{
		{1.0 / 16, 2.0 / 16, 1.0 / 16},
		{2.0 / 16, 4.0 / 16, 2.0 / 16},
		{1.0 / 16, 2.0 / 16, 1.0 / 16},
	}}
}

// Convolve applies a 3x3 kernel to the R, G and B channels of every
// interior pixel, reading only from the input buffer. Border pixels
// (row/column 0 and the last row/column) are copied through unchanged;
// the alpha channel is copied unchanged for every pixel.
//
// The input is never mutated: the result is a new buffer of identical
// dimensions. The buffer length must match width*height*4.
func Convolve(buf PixelBuffer, width, height int, kernel Kernel) PixelBuffer {
	out := buf.Clone()

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			var sumR, sumG, sumB float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					r, g, b, _ := buf.At(x+kx, y+ky, width)
					k := kernel.Values[ky+1][kx+1]
					sumR += float64(r) * k
					sumG += float64(g) * k
					sumB += float64(b) * k
				}
			}
			_, _, _, a := buf.At(x, y, width)
			out.Set(x, y, width,
				clampUint8(math.Round(sumR)),
				clampUint8(math.Round(sumG)),
				clampUint8(math.Round(sumB)),
				a)
		}
	}

	return out
}
