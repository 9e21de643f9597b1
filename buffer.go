// Package img2glyph converts a sampled RGBA pixel buffer into a grid of
// text glyphs suitable for monospaced display. The pipeline applies an
// optional unsharp mask, optional Floyd-Steinberg dithering, then maps
// each pixel's adjusted luminance to a character from a configurable
// palette, attaching per-glyph color when color mode is enabled.
//
// The package operates purely on in-memory buffers: image decoding and
// resampling live in the imageutil subpackage, and presentation (plain
// text, ANSI escapes, PNG snapshots) is layered on top of the GlyphGrid
// the pipeline produces.
package img2glyph

import "fmt"

// RGB represents a color in the RGB color space with 8-bit channels,
// where each channel ranges from 0 to 255.
type RGB struct {
	R, G, B uint8
}

// PixelBuffer holds width*height RGBA samples in raster order, four
// bytes per pixel (R, G, B, A). An alpha of 0 marks a fully transparent
// sample; the pipeline emits a blank glyph for it without computing
// luminance. A buffer is owned by the invocation that produced it:
// filters never mutate their input and return a fresh buffer instead.
type PixelBuffer []uint8

// NewPixelBuffer allocates a zeroed buffer for the given dimensions.
func NewPixelBuffer(width, height int) PixelBuffer {
	return make(PixelBuffer, width*height*4)
}

// At returns the RGBA channels of the pixel at (x, y). The caller is
// responsible for keeping x and y within bounds.
func (p PixelBuffer) At(x, y, width int) (r, g, b, a uint8) {
	i := (y*width + x) * 4
	return p[i], p[i+1], p[i+2], p[i+3]
}

// Set writes the RGBA channels of the pixel at (x, y).
func (p PixelBuffer) Set(x, y, width int, r, g, b, a uint8) {
	i := (y*width + x) * 4
	p[i], p[i+1], p[i+2], p[i+3] = r, g, b, a
}

// Clone returns a deep copy of the buffer.
func (p PixelBuffer) Clone() PixelBuffer {
	out := make(PixelBuffer, len(p))
	copy(out, p)
	return out
}

// validateDimensions checks that the buffer length matches the claimed
// dimensions. Every entry point that accepts a buffer calls this before
// touching pixel data.
func (p PixelBuffer) validateDimensions(width, height int) error {
	if len(p) != width*height*4 {
		return &DimensionError{Width: width, Height: height, Len: len(p)}
	}
	return nil
}

// clampUint8 clamps a float64 to [0, 255] and converts to uint8.
func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
