package img2glyph

import "math"

// ditherStep is the grayscale quantization interval, giving an 8-level ramp.
const ditherStep = 32

// Dither performs Floyd-Steinberg error diffusion over the buffer,
// scanning rows top-to-bottom and columns left-to-right. Each opaque
// pixel is replaced by an 8-level grayscale quantization of its channel
// average, and the residual error per original channel (scaled by
// strength) is diffused into not-yet-visited neighbors with the classic
// weights: east 7/16, south-west 3/16, south 5/16, south-east 1/16.
//
// Diffused error is written into the working buffer as it accumulates,
// so later pixels see the adjustments from earlier ones. Processing
// order is part of the contract: the algorithm is sequential and must
// not be parallelized across pixels.
//
// Transparent pixels (alpha 0) are skipped: they are not quantized and
// never receive diffused error, but error still flows around them to
// opaque pixels further along.
//
// Returns a new buffer; the input is not mutated.
func Dither(buf PixelBuffer, width, height int, strength float64) PixelBuffer {
	out := buf.Clone()

	diffuse := func(x, y int, errR, errG, errB, weight float64) {
		if x < 0 || x >= width || y < 0 || y >= height {
			return
		}
		r, g, b, a := out.At(x, y, width)
		if a == 0 {
			return
		}
		out.Set(x, y, width,
			clampUint8(float64(r)+errR*weight),
			clampUint8(float64(g)+errG*weight),
			clampUint8(float64(b)+errB*weight),
			a)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := out.At(x, y, width)
			if a == 0 {
				continue
			}

			avg := (float64(r) + float64(g) + float64(b)) / 3
			gray := clampUint8(math.Round(avg/ditherStep) * ditherStep)
			out.Set(x, y, width, gray, gray, gray, a)

			errR := (float64(r) - float64(gray)) * strength
			errG := (float64(g) - float64(gray)) * strength
			errB := (float64(b) - float64(gray)) * strength

			diffuse(x+1, y, errR, errG, errB, 7.0/16.0)
			diffuse(x-1, y+1, errR, errG, errB, 3.0/16.0)
			diffuse(x, y+1, errR, errG, errB, 5.0/16.0)
			diffuse(x+1, y+1, errR, errG, errB, 1.0/16.0)
		}
	}

	return out
}
