// Command glyphify converts an image into a grid of text glyphs and
// prints it as plain text or ANSI-colored text, or renders it to a PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/wmorgan/img2glyph"
	"github.com/wmorgan/img2glyph/imageutil"
)

const fetchTimeout = 30 * time.Second

func main() {
	inputFile := flag.String("input", "",
		"Path or http(s) URL of the input image (required)")
	outputFile := flag.String("output", "",
		"Path to save the output (if not specified, prints to stdout)")
	width := flag.Int("width", 80,
		"Target width of the output in cell columns")
	charset := flag.String("charset", img2glyph.DefaultCharset,
		"Character palette, ordered brightest-character-first")
	detailed := flag.Bool("detailed", false,
		"Use the fine-grained 70-character palette")
	invert := flag.Bool("invert", false,
		"Invert the luminance-to-character mapping")
	colorMode := flag.Bool("color", false,
		"Attach per-glyph color and emit 24-bit ANSI escapes")
	contrast := flag.Float64("contrast", 1.0,
		"Contrast multiplier in [0.5, 2.0]")
	brightness := flag.Float64("brightness", 0.0,
		"Additive brightness in [-0.5, 0.5]")
	sharpen := flag.Bool("sharpen", false,
		"Apply an unsharp mask before mapping")
	dither := flag.Bool("dither", false,
		"Apply Floyd-Steinberg dithering before mapping")
	ditherAmount := flag.Float64("ditheramount", 0.5,
		"Error diffusion strength in [0.0, 1.0]")
	fontPath := flag.String("font", "",
		"TTF font for PNG output (required when -output ends in .png)")
	fontScale := flag.Int("fontscale", 2,
		"Cell scaling factor for PNG output (1 = 8x16 px per cell)")
	flag.Parse()

	if *inputFile == "" {
		fmt.Println("Please provide the image using the -input flag")
		flag.PrintDefaults()
		os.Exit(1)
	}

	img, err := loadInput(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading image: %v\n", err)
		os.Exit(1)
	}

	cfg := img2glyph.NewConfig(
		img2glyph.WithWidth(*width),
		img2glyph.WithCharset(*charset),
		img2glyph.WithDetailedCharset(*detailed),
		img2glyph.WithInvert(*invert),
		img2glyph.WithColor(*colorMode),
		img2glyph.WithContrast(*contrast),
		img2glyph.WithBrightness(*brightness),
		img2glyph.WithSharpening(*sharpen),
		img2glyph.WithDithering(*dither),
		img2glyph.WithDitherAmount(*ditherAmount),
	)

	resized := imageutil.ResizeForGlyphs(img, cfg.Width())
	buf := imageutil.ToPixelBuffer(resized)

	start := time.Now()
	grid, err := img2glyph.Render(buf, resized.Width(), resized.Height(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering image: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	if *outputFile != "" && strings.HasSuffix(strings.ToLower(*outputFile), ".png") {
		if *fontPath == "" {
			fmt.Fprintln(os.Stderr, "PNG output requires a TTF font via -font")
			os.Exit(1)
		}
		opts := img2glyph.SnapshotOptions{FontPath: *fontPath, Scale: *fontScale}
		if err := img2glyph.SaveGridToPNG(grid, *outputFile, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing PNG: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("PNG output written to %s\n", *outputFile)
		fmt.Printf("Computation time: %v\n", elapsed)
		return
	}

	var text string
	if cfg.ColorMode() {
		text = img2glyph.RenderToANSI(grid)
	} else {
		text = grid.Text()
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(text), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Output written to %s\n", *outputFile)
		fmt.Printf("Grid size: %dx%d cells\n", grid.Width, grid.Height)
		fmt.Printf("Computation time: %v\n", elapsed)
		return
	}

	fmt.Print(text)
}

// loadInput reads the source image from a local path or an http(s) URL.
func loadInput(input string) (*imageutil.RGBAImage, error) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return imageutil.FetchImage(ctx, input)
	}
	return imageutil.LoadImage(input)
}
