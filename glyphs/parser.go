package glyphs

import (
	"image"
	"sort"
)

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (golang.org/x/image/font/opentype or github.com/go-text/typesetting).
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont is a parsed font able to render single glyphs.
// Implementations are not required to be safe for concurrent use.
type ParsedFont interface {
	// HasGlyph reports whether the font maps r to a glyph other than notdef.
	HasGlyph(r rune) bool

	// Glyph renders r at ppem pixels per em.
	// Returns false if the font has no glyph for r or rendering failed.
	Glyph(r rune, ppem float64) (*GlyphImage, bool)

	// LineHeight returns the recommended baseline to baseline distance
	// at ppem pixels per em.
	LineHeight(ppem float64) float64
}

// GlyphImage is a rendered glyph coverage mask.
type GlyphImage struct {
	// Mask holds coverage values. Mask.Rect equals Bounds.
	Mask *image.Alpha

	// Bounds relative to the glyph origin on the baseline, y pointing down.
	// Empty for glyphs without ink, such as space.
	Bounds image.Rectangle

	// Advance width in pixels.
	Advance float64
}

// parserRegistry holds registered font parsers.
var parserRegistry = map[string]FontParser{
	"ximage": &ximageParser{},
	"gotext": &gotextParser{},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
// Registering an existing name replaces it. RegisterParser is not safe to
// call concurrently with font loading.
func RegisterParser(name string, parser FontParser) {
	parserRegistry[name] = parser
}

// Parsers returns the registered parser names in sorted order.
func Parsers() []string {
	names := make([]string, 0, len(parserRegistry))
	for name := range parserRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// getParser returns the parser registered under name.
// An empty name selects the default parser.
func getParser(name string) (FontParser, bool) {
	if name == "" {
		name = defaultParserName
	}
	p, ok := parserRegistry[name]
	return p, ok
}
