package img2glyph

import "testing"

func TestCharForDocumentedFormula(t *testing.T) {
	// With a two-character palette and no inversion, luminance 255 maps
	// to index (255-255)*2/256 = 0 and luminance 0 to (255-0)*2/256 = 1.
	palette := []rune("@ ")

	if got := CharFor(255, palette, false); got != '@' {
		t.Errorf("Expected '@' for luminance 255, got %q", got)
	}
	if got := CharFor(0, palette, false); got != ' ' {
		t.Errorf("Expected ' ' for luminance 0, got %q", got)
	}
}

func TestCharForInvertFlipsMapping(t *testing.T) {
	palette := []rune("@ ")

	if got := CharFor(255, palette, true); got != ' ' {
		t.Errorf("Expected ' ' for inverted luminance 255, got %q", got)
	}
	if got := CharFor(0, palette, true); got != '@' {
		t.Errorf("Expected '@' for inverted luminance 0, got %q", got)
	}
}

func TestCharForAlwaysInBounds(t *testing.T) {
	palettes := [][]rune{
		[]rune("#"),
		[]rune("@ "),
		[]rune(DefaultCharset),
		[]rune(DetailedCharset),
	}

	for _, palette := range palettes {
		for l := 0; l <= 255; l++ {
			for _, invert := range []bool{false, true} {
				got := CharFor(uint8(l), palette, invert)
				found := false
				for _, r := range palette {
					if r == got {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("CharFor(%d, len %d, invert=%v) returned %q, not in palette",
						l, len(palette), invert, got)
				}
			}
		}
	}
}

func TestCharForMonotonicInLuminance(t *testing.T) {
	// Rising luminance must never move backward through the palette:
	// the index is non-increasing without inversion and non-decreasing
	// with it.
	palette := []rune(DefaultCharset)

	indexOf := func(r rune) int {
		for i, p := range palette {
			if p == r {
				return i
			}
		}
		t.Fatalf("rune %q not in palette", r)
		return -1
	}

	prev := indexOf(CharFor(0, palette, false))
	for l := 1; l <= 255; l++ {
		idx := indexOf(CharFor(uint8(l), palette, false))
		if idx > prev {
			t.Fatalf("Index increased with luminance at %d: %d -> %d", l, prev, idx)
		}
		prev = idx
	}

	prev = indexOf(CharFor(0, palette, true))
	for l := 1; l <= 255; l++ {
		idx := indexOf(CharFor(uint8(l), palette, true))
		if idx < prev {
			t.Fatalf("Inverted index decreased with luminance at %d: %d -> %d", l, prev, idx)
		}
		prev = idx
	}
}

func TestDetailedCharsetLength(t *testing.T) {
	if got := len([]rune(DetailedCharset)); got != 70 {
		t.Errorf("Expected 70 runes in the detailed charset, got %d", got)
	}
}
