package img2glyph

import "testing"

func TestLuminanceKnownValues(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint8
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 255},
		{"pure red", 255, 0, 0, 76},
		{"pure green", 0, 255, 0, 150},
		{"pure blue", 0, 0, 255, 29},
		{"mid gray", 128, 128, 128, 128},
	}

	for _, tt := range tests {
		got := Luminance(tt.r, tt.g, tt.b)
		if got != tt.want {
			t.Errorf("%s: Expected luminance %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestLuminanceMonotonicPerChannel(t *testing.T) {
	// Luminance must be non-decreasing in each channel individually.
	base := [3]uint8{60, 120, 180}
	for ch := 0; ch < 3; ch++ {
		prev := uint8(0)
		for v := 0; v <= 255; v++ {
			c := base
			c[ch] = uint8(v)
			l := Luminance(c[0], c[1], c[2])
			if l < prev {
				t.Fatalf("Luminance decreased in channel %d at value %d: %d -> %d",
					ch, v, prev, l)
			}
			prev = l
		}
	}
}

func TestAdjustMidpointFixedPoint(t *testing.T) {
	// 128 is a fixed point of contrast adjustment for any contrast.
	for _, contrast := range []float64{0.5, 0.8, 1.0, 1.5, 2.0} {
		got := Adjust(128, contrast, 0)
		if got != 128 {
			t.Errorf("Expected Adjust(128, %v, 0) == 128, got %d", contrast, got)
		}
	}
}

func TestAdjustContrastAndBrightness(t *testing.T) {
	tests := []struct {
		name       string
		l          uint8
		contrast   float64
		brightness float64
		want       uint8
	}{
		{"identity", 100, 1.0, 0.0, 100},
		{"contrast stretch below mid", 64, 2.0, 0.0, 0},
		{"contrast stretch above mid", 192, 2.0, 0.0, 255},
		{"contrast flatten", 64, 0.5, 0.0, 96},
		{"brightness lift", 100, 1.0, 0.2, 151},
		{"brightness drop clamps", 10, 1.0, -0.5, 0},
		{"brightness lift clamps", 250, 1.0, 0.5, 255},
	}

	for _, tt := range tests {
		got := Adjust(tt.l, tt.contrast, tt.brightness)
		if got != tt.want {
			t.Errorf("%s: Expected %d, got %d", tt.name, tt.want, got)
		}
	}
}
