package img2glyph

import "fmt"

// ConfigError reports a configuration value outside its documented
// domain. It is detected before any pixel processing starts, so a
// failing Render call never returns a partial GlyphGrid.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("img2glyph: invalid config field %s: %s", e.Field, e.Reason)
}

// DimensionError reports a pixel buffer whose length does not match the
// claimed width*height*4 layout.
type DimensionError struct {
	Width  int
	Height int
	Len    int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("img2glyph: buffer length %d does not match %dx%d (want %d)",
		e.Len, e.Width, e.Height, e.Width*e.Height*4)
}
