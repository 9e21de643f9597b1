package imageutil

import (
	"image"
	"image/color"
	"testing"
)

// gradientImage builds a horizontal grayscale gradient test image.
func gradientImage(width, height int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(x * 255 / (width - 1))
			img.SetRGBA8(x, y, v, v, v, 255)
		}
	}
	return img
}

func TestNewRGBAImage(t *testing.T) {
	img := NewRGBAImage(100, 50)
	if img.Width() != 100 {
		t.Errorf("Expected width 100, got %d", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Expected height 50, got %d", img.Height())
	}
}

func TestRGBAImageClone(t *testing.T) {
	img := NewRGBAImage(10, 10)
	img.SetRGBA8(5, 5, 255, 0, 0, 255)

	clone := img.Clone()
	if clone.RGBAAt(5, 5) != img.RGBAAt(5, 5) {
		t.Error("Clone should have same pixel values")
	}

	// Modify clone, original should be unchanged
	clone.SetRGBA8(5, 5, 0, 255, 0, 255)
	if img.RGBAAt(5, 5).G != 0 {
		t.Error("Modifying clone should not affect original")
	}
}

func TestRGBAImageFromImagePreservesAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 0})

	img := RGBAImageFromImage(src)
	if img.RGBAAt(0, 0).A != 255 {
		t.Errorf("Expected alpha 255, got %d", img.RGBAAt(0, 0).A)
	}
	if img.RGBAAt(1, 0).A != 0 {
		t.Errorf("Expected alpha 0, got %d", img.RGBAAt(1, 0).A)
	}
}

func TestResize(t *testing.T) {
	img := gradientImage(100, 100)

	resized := Resize(img, 50, 50, InterpolationArea)
	if resized.Width() != 50 || resized.Height() != 50 {
		t.Errorf("Expected 50x50, got %dx%d", resized.Width(), resized.Height())
	}

	resized = Resize(img, 200, 200, InterpolationLinear)
	if resized.Width() != 200 || resized.Height() != 200 {
		t.Errorf("Expected 200x200, got %dx%d", resized.Width(), resized.Height())
	}
}

func TestResizeToWidth(t *testing.T) {
	img := gradientImage(200, 100)

	resized := ResizeToWidth(img, 100, InterpolationArea)
	if resized.Width() != 100 || resized.Height() != 50 {
		t.Errorf("Expected 100x50, got %dx%d", resized.Width(), resized.Height())
	}
}

func TestResizeForGlyphs(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		width      int
		wantH      int
	}{
		{"square source", 100, 100, 80, 40},
		{"wide source", 200, 100, 80, 20},
		{"tall source", 100, 200, 50, 50},
		{"tiny target keeps one row", 100, 1, 10, 1},
	}

	for _, tt := range tests {
		img := gradientImage(tt.srcW, tt.srcH)
		out := ResizeForGlyphs(img, tt.width)
		if out.Width() != tt.width || out.Height() != tt.wantH {
			t.Errorf("%s: Expected %dx%d, got %dx%d",
				tt.name, tt.width, tt.wantH, out.Width(), out.Height())
		}
	}
}

func TestToPixelBufferLayout(t *testing.T) {
	img := NewRGBAImage(3, 2)
	img.SetRGBA8(0, 0, 1, 2, 3, 255)
	img.SetRGBA8(2, 1, 40, 50, 60, 255)

	buf := ToPixelBuffer(img)
	if len(buf) != 3*2*4 {
		t.Fatalf("Expected buffer length %d, got %d", 3*2*4, len(buf))
	}

	r, g, b, a := buf.At(0, 0, 3)
	if r != 1 || g != 2 || b != 3 || a != 255 {
		t.Errorf("Expected (1,2,3,255) at (0,0), got (%d,%d,%d,%d)", r, g, b, a)
	}
	r, g, b, a = buf.At(2, 1, 3)
	if r != 40 || g != 50 || b != 60 || a != 255 {
		t.Errorf("Expected (40,50,60,255) at (2,1), got (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestPixelBufferRoundTrip(t *testing.T) {
	img := gradientImage(5, 4)

	buf := ToPixelBuffer(img)
	back := FromPixelBuffer(buf, 5, 4)

	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			if back.RGBAAt(x, y) != img.RGBAAt(x, y) {
				t.Fatalf("Round trip changed pixel (%d,%d)", x, y)
			}
		}
	}
}
