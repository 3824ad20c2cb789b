package fontatlas

import (
	"math"

	"github.com/gogpu/fontatlas/blocks"
)

// Config holds the parameters of one atlas build.
type Config struct {
	// FontPath is the TTF or OTF file to rasterize.
	FontPath string

	// FontSize is the high-resolution rendering size in pixels per em.
	// Default: 64
	FontSize float32

	// Margin is the padding around each glyph in high-resolution pixels.
	// It is also the distance field clamp distance.
	// Default: 8
	Margin int

	// Width is the side of the square target bitmap in pixels.
	// Default: 512
	Width int

	// WriteBigPNG writes the high-resolution bitmap to
	// OutputDir/<font name>.png before the distance field transform.
	WriteBigPNG bool

	// OutputDir is where the diagnostic PNG is written.
	// Default: "." (current directory)
	OutputDir string

	// Ranges are the codepoints to rasterize.
	Ranges []blocks.Range
}

// DefaultConfig returns a configuration for Basic Latin with default sizes.
// FontPath must still be set.
func DefaultConfig() Config {
	return Config{
		FontSize:  64,
		Margin:    8,
		Width:     512,
		OutputDir: ".",
		Ranges:    blocks.Select([]string{"Basic Latin"}),
	}
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.FontPath == "" {
		return &ConfigError{Field: "FontPath", Reason: "must not be empty"}
	}
	size := float64(c.FontSize)
	if math.IsNaN(size) || math.IsInf(size, 0) || c.FontSize <= 0 {
		return &ConfigError{Field: "FontSize", Reason: "must be positive and finite"}
	}
	if c.Margin < 0 {
		return &ConfigError{Field: "Margin", Reason: "must not be negative"}
	}
	if c.Width <= 0 {
		return &ConfigError{Field: "Width", Reason: "must be positive"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "fontatlas: invalid config." + e.Field + ": " + e.Reason
}
