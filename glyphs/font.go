package glyphs

import (
	"fmt"
	"os"
)

// Font is a parsed font ready to render atlases.
//
// Font is not safe for concurrent use.
type Font struct {
	parsed ParsedFont
	config fontConfig
}

// NewFont parses font data (TTF or OTF).
// The data slice may be reused after this call.
func NewFont(data []byte, opts ...Option) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultFontConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser, ok := getParser(config.parserName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, config.parserName)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := parser.Parse(dataCopy)
	if err != nil {
		return nil, err
	}

	return &Font{
		parsed: parsed,
		config: config,
	}, nil
}

// LoadFont loads a Font from a font file path.
func LoadFont(path string, opts ...Option) (*Font, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glyphs: failed to read font file: %w", err)
	}
	return NewFont(data, opts...)
}
