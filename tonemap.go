package img2glyph

import "math"

// Luminance computes the perceptual brightness of an RGB sample using
// the BT.601 weights: round(0.299*R + 0.587*G + 0.114*B), clamped to
// [0, 255]. This matches the weighting the rest of the pipeline and the
// imageutil grayscale conversion use.
func Luminance(r, g, b uint8) uint8 {
	l := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	return clampUint8(math.Round(l))
}

// Adjust applies contrast and brightness to a luminance value:
//
//	clamp(0, 255, (L-128)*contrast + 128 + brightness*255)
//
// Contrast is a multiplier around the midpoint (1.0 = identity), so 128
// is a fixed point for any contrast. Brightness is an additive fraction
// of full scale (0.0 = identity). Both come pre-validated from Config.
func Adjust(l uint8, contrast, brightness float64) uint8 {
	v := (float64(l)-128)*contrast + 128 + brightness*255
	return clampUint8(v)
}
