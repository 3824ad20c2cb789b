package glyphs

import "log/slog"

// Option configures Font creation.
type Option func(*fontConfig)

// fontConfig holds configuration for Font.
type fontConfig struct {
	parserName string
	maxSize    int
	logger     *slog.Logger
}

// DefaultMaxSize is the largest bitmap side MakeAtlas grows to.
const DefaultMaxSize = 16384

// defaultFontConfig returns the default font configuration.
func defaultFontConfig() fontConfig {
	return fontConfig{
		parserName: defaultParserName,
		maxSize:    DefaultMaxSize,
		logger:     slog.New(slog.DiscardHandler),
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) Option {
	return func(c *fontConfig) {
		c.parserName = name
	}
}

// WithMaxSize limits how far MakeAtlas grows the bitmap.
// Values <= 0 restore DefaultMaxSize.
func WithMaxSize(size int) Option {
	return func(c *fontConfig) {
		if size <= 0 {
			size = DefaultMaxSize
		}
		c.maxSize = size
	}
}

// WithLogger sets the logger used for packing diagnostics.
// Pass nil to disable logging.
func WithLogger(l *slog.Logger) Option {
	return func(c *fontConfig) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		c.logger = l
	}
}
