package img2glyph

// sharpenStrength is the fixed unsharp mask amount. The surrounding
// configuration only toggles sharpening on or off.
const sharpenStrength = 0.8

// Sharpen applies an unsharp mask to the buffer: each RGB channel
// becomes clamp(0, 255, original + (original-blurred)*0.8), where the
// blurred value comes from convolving with the 3x3 Gaussian kernel.
// Alpha passes through unchanged. Returns a new buffer; the input is
// not mutated.
func Sharpen(buf PixelBuffer, width, height int) PixelBuffer {
	blurred := Convolve(buf, width, height, GaussianKernel())
	out := make(PixelBuffer, len(buf))

	for i := 0; i < len(buf); i += 4 {
		for c := 0; c < 3; c++ {
			orig := float64(buf[i+c])
			out[i+c] = clampUint8(orig + (orig-float64(blurred[i+c]))*sharpenStrength)
		}
		out[i+3] = buf[i+3]
	}

	return out
}
