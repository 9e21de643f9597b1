package img2glyph

// CharFor maps an adjusted luminance value to a character from the
// palette. Without inversion, index = floor((255-L)/256 * len), so a
// palette ordered brightest-character-first assigns its first entry to
// the brightest input. With inversion, index = floor(L/256 * len). The
// index is clamped to the palette bounds.
//
// The palette must be non-empty; Config validation rejects an empty one
// before the pipeline runs.
func CharFor(luminance uint8, palette []rune, invert bool) rune {
	var idx int
	if invert {
		idx = int(luminance) * len(palette) / 256
	} else {
		idx = (255 - int(luminance)) * len(palette) / 256
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(palette)-1 {
		idx = len(palette) - 1
	}
	return palette[idx]
}
