package img2glyph

import (
	"fmt"
	"strings"
)

const esc = ""

// Text renders the grid as plain text: each row's characters
// concatenated, every row terminated by a newline. Attached colors are
// ignored.
func (g *GlyphGrid) Text() string {
	var out strings.Builder
	out.Grow((g.Width + 1) * g.Height)
	for _, row := range g.Rows {
		for _, glyph := range row {
			out.WriteRune(glyph.Char)
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// RenderToANSI renders the grid with 24-bit foreground escape codes.
// Consecutive glyphs sharing a color reuse the active escape rather
// than re-emitting it, and a row that ends with an active color is
// reset before its newline. Glyphs without an attached color (blank
// glyphs, or any glyph from a colorless conversion) are written bare
// under a reset state.
func RenderToANSI(g *GlyphGrid) string {
	var out strings.Builder

	for _, row := range g.Rows {
		active := false
		var current RGB
		for _, glyph := range row {
			switch {
			case glyph.HasColor && (!active || glyph.Color != current):
				fmt.Fprintf(&out, "%s[38;2;%d;%d;%dm", esc,
					glyph.Color.R, glyph.Color.G, glyph.Color.B)
				active = true
				current = glyph.Color
			case !glyph.HasColor && active:
				out.WriteString(esc + "[0m")
				active = false
			}
			out.WriteRune(glyph.Char)
		}
		if active {
			out.WriteString(esc + "[0m")
		}
		out.WriteByte('\n')
	}

	return out.String()
}
