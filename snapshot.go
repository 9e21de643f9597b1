package img2glyph

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

const (
	// cellWidth and cellHeight define the unscaled pixel size of one
	// glyph cell in PNG snapshots. The 1:2 ratio matches the cell
	// aspect the resampling glue compensates for.
	cellWidth  = 8
	cellHeight = 16
)

// SnapshotOptions configures SaveGridToPNG.
type SnapshotOptions struct {
	// FontPath is the path to a TrueType font used to draw glyphs.
	FontPath string
	// Scale is an integer multiplier on the 8x16 cell size. Values
	// below 1 are treated as 1.
	Scale int
}

// SaveGridToPNG rasterizes a glyph grid to a PNG file, drawing each
// character into its cell with the given TrueType font. Colored glyphs
// are drawn in their attached RGB, colorless ones in white, all on a
// black background.
func SaveGridToPNG(grid *GlyphGrid, path string, opts SnapshotOptions) error {
	fontBytes, err := os.ReadFile(opts.FontPath)
	if err != nil {
		return fmt.Errorf("failed to read font: %w", err)
	}
	ttf, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}

	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}
	cw, ch := cellWidth*scale, cellHeight*scale

	img := image.NewRGBA(image.Rect(0, 0, grid.Width*cw, grid.Height*ch))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(float64(ch))
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetHinting(font.HintingFull)

	// Baseline offset within a cell, derived from the face metrics so
	// descenders are not clipped.
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(ch),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	ascent := int(face.Metrics().Ascent >> 6)

	white := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})

	for y, row := range grid.Rows {
		for x, glyph := range row {
			if glyph.Char == ' ' {
				continue
			}
			if glyph.HasColor {
				ctx.SetSrc(image.NewUniform(color.RGBA{
					R: glyph.Color.R,
					G: glyph.Color.G,
					B: glyph.Color.B,
					A: 255,
				}))
			} else {
				ctx.SetSrc(white)
			}
			pt := freetype.Pt(x*cw, y*ch+ascent)
			if _, err := ctx.DrawString(string(glyph.Char), pt); err != nil {
				return fmt.Errorf("failed to draw glyph at (%d,%d): %w", x, y, err)
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	return png.Encode(f, img)
}
