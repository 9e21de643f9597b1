package img2glyph

// Glyph is one output cell: a character plus an optional RGB color.
// HasColor is true only when the conversion ran in color mode and the
// source pixel was opaque.
type Glyph struct {
	Char     rune
	Color    RGB
	HasColor bool
}

// blankGlyph is what a fully transparent sample renders as.
var blankGlyph = Glyph{Char: ' '}

// GlyphGrid is the pipeline's output artifact: ordered rows of glyphs
// with dimensions equal to the sampled buffer's. Ownership transfers to
// the caller on return.
type GlyphGrid struct {
	Width  int
	Height int
	Rows   [][]Glyph
}

// Render converts a sampled pixel buffer into a glyph grid.
//
// The stages run in a fixed order: configuration and dimension
// validation, optional sharpening, optional dithering, then a per-pixel
// raster scan that maps adjusted luminance to a palette character.
// Transparent pixels (alpha 0) become blank glyphs with no color and no
// luminance computation. In color mode each opaque glyph carries the
// pixel's post-filter RGB (the sharpened/dithered value when those
// stages ran, the original value otherwise).
//
// Every transform is a deterministic pure function over in-memory data,
// so a call either fully succeeds or fails up front with a *ConfigError
// or *DimensionError; no partial grid is ever returned. The buffer must
// already be resampled to width x height - Render never resizes.
func Render(buf PixelBuffer, width, height int, cfg Config) (*GlyphGrid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := buf.validateDimensions(width, height); err != nil {
		return nil, err
	}

	if cfg.sharpen {
		buf = Sharpen(buf, width, height)
	}
	if cfg.dither {
		buf = Dither(buf, width, height, cfg.ditherAmount)
	}

	palette := cfg.activePalette()
	grid := &GlyphGrid{
		Width:  width,
		Height: height,
		Rows:   make([][]Glyph, height),
	}

	for y := 0; y < height; y++ {
		row := make([]Glyph, width)
		for x := 0; x < width; x++ {
			r, g, b, a := buf.At(x, y, width)
			if a == 0 {
				row[x] = blankGlyph
				continue
			}
			l := Adjust(Luminance(r, g, b), cfg.contrast, cfg.brightness)
			glyph := Glyph{Char: CharFor(l, palette, cfg.invert)}
			if cfg.color {
				glyph.Color = RGB{R: r, G: g, B: b}
				glyph.HasColor = true
			}
			row[x] = glyph
		}
		grid.Rows[y] = row
	}

	return grid, nil
}
