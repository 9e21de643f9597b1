package img2glyph

// DefaultCharset is the short palette used when no charset is
// configured, ordered brightest-character-first.
const DefaultCharset = "@%#*+=-:. "

// DetailedCharset is the fine-grained 70-character palette selected by
// WithDetailedCharset, ordered brightest-character-first.
const DetailedCharset = "$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. "

// Config holds the immutable settings for one conversion. Build it with
// NewConfig and functional options; a zero-options call yields the
// documented defaults. No field is mutable after construction - build a
// new Config per conversion instead.
type Config struct {
	width        int
	charset      []rune
	detailed     bool
	invert       bool
	color        bool
	sharpen      bool
	dither       bool
	contrast     float64
	brightness   float64
	ditherAmount float64
}

// Option configures a Config under construction.
type Option func(*Config)

// NewConfig builds a Config from the given options. Defaults: width 80,
// charset DefaultCharset, detailed/invert/color/sharpen/dither off,
// contrast 1.0, brightness 0.0, dither amount 0.5.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		width:        80,
		charset:      []rune(DefaultCharset),
		contrast:     1.0,
		brightness:   0.0,
		ditherAmount: 0.5,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithWidth sets the target width in cell columns. Used by callers when
// resampling; the pipeline itself renders whatever buffer it is handed.
func WithWidth(width int) Option {
	return func(c *Config) { c.width = width }
}

// WithCharset sets the character palette, ordered brightest-to-darkest
// or the reverse (pair with WithInvert for the latter).
func WithCharset(charset string) Option {
	return func(c *Config) { c.charset = []rune(charset) }
}

// WithDetailedCharset selects the 70-character fine-grained palette
// instead of the configured charset.
func WithDetailedCharset(detailed bool) Option {
	return func(c *Config) { c.detailed = detailed }
}

// WithInvert flips the luminance-to-character mapping.
func WithInvert(invert bool) Option {
	return func(c *Config) { c.invert = invert }
}

// WithColor attaches each opaque pixel's RGB to its glyph.
func WithColor(color bool) Option {
	return func(c *Config) { c.color = color }
}

// WithContrast sets the contrast multiplier. 1.0 is identity; the
// accepted domain is [0.5, 2.0].
func WithContrast(contrast float64) Option {
	return func(c *Config) { c.contrast = contrast }
}

// WithBrightness sets the additive brightness as a fraction of full
// scale. 0.0 is identity; the accepted domain is [-0.5, 0.5].
func WithBrightness(brightness float64) Option {
	return func(c *Config) { c.brightness = brightness }
}

// WithSharpening toggles the unsharp mask stage.
func WithSharpening(sharpen bool) Option {
	return func(c *Config) { c.sharpen = sharpen }
}

// WithDithering toggles the Floyd-Steinberg dithering stage.
func WithDithering(dither bool) Option {
	return func(c *Config) { c.dither = dither }
}

// WithDitherAmount sets the error diffusion strength in [0.0, 1.0].
func WithDitherAmount(amount float64) Option {
	return func(c *Config) { c.ditherAmount = amount }
}

// Width returns the configured target width in cell columns.
func (c Config) Width() int { return c.width }

// ColorMode reports whether glyphs carry per-cell color.
func (c Config) ColorMode() bool { return c.color }

// Validate checks every field against its documented domain. It is
// called by Render before any pixel work so that a bad configuration
// fails atomically.
func (c Config) Validate() error {
	if c.width <= 0 {
		return &ConfigError{Field: "width", Reason: "must be positive"}
	}
	if len(c.charset) == 0 {
		return &ConfigError{Field: "charset", Reason: "palette must not be empty"}
	}
	if c.contrast < 0.5 || c.contrast > 2.0 {
		return &ConfigError{Field: "contrast", Reason: "must be in [0.5, 2.0]"}
	}
	if c.brightness < -0.5 || c.brightness > 0.5 {
		return &ConfigError{Field: "brightness", Reason: "must be in [-0.5, 0.5]"}
	}
	if c.ditherAmount < 0.0 || c.ditherAmount > 1.0 {
		return &ConfigError{Field: "ditherAmount", Reason: "must be in [0.0, 1.0]"}
	}
	return nil
}

// activePalette returns the palette the glyph mapper should use: the
// detailed ramp when selected, otherwise the configured charset.
func (c Config) activePalette() []rune {
	if c.detailed {
		return []rune(DetailedCharset)
	}
	return c.charset
}
