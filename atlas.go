package fontatlas

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/gogpu/fontatlas/glyphs"
)

// Rect is an axis-aligned rectangle in target bitmap pixels,
// with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float32
}

// CharacterInfo places one glyph in the target bitmap.
type CharacterInfo struct {
	// InnerBoundingBox is the glyph's drawn extent, excluding the margin.
	InnerBoundingBox Rect

	// PreDrawAdvance is how far the pen moves right before drawing.
	PreDrawAdvance float32

	// PostDrawAdvance is how far the pen moves right after drawing.
	PostDrawAdvance float32

	// HeightOffset is the vertical pen adjustment applied only while
	// drawing this glyph.
	HeightOffset float32
}

// FontAtlas is the metadata half of a built atlas. The bitmap it
// describes is stored separately.
type FontAtlas struct {
	// FontName is the font file's base name without directory or extension.
	FontName string

	// LineHeight is the baseline to baseline distance.
	LineHeight float32

	// FontSize is the nominal font size.
	FontSize float32

	// Margin is the padding around each glyph in the bitmap.
	Margin float32

	// Map holds one entry per rasterized codepoint.
	Map map[rune]CharacterInfo
}

// Runes returns the codepoints of a.Map in ascending order.
func (a *FontAtlas) Runes() []rune {
	runes := make([]rune, 0, len(a.Map))
	for r := range a.Map {
		runes = append(runes, r)
	}
	slices.Sort(runes)
	return runes
}

// FontName derives an atlas name from a font file path: the base name
// without its extension.
func FontName(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	if ext := filepath.Ext(base); ext != "" && ext != base {
		return strings.TrimSuffix(base, ext)
	}
	return base
}

// fromGlyph converts rasterizer output to high-resolution CharacterInfo.
func fromGlyph(c glyphs.CharInfo) CharacterInfo {
	b := c.BoundingBox
	return CharacterInfo{
		InnerBoundingBox: Rect{
			X: float32(b.Min.X),
			Y: float32(b.Min.Y),
			W: float32(b.Dx()),
			H: float32(b.Dy()),
		},
		PreDrawAdvance:  c.PreDrawAdvance,
		PostDrawAdvance: c.PostDrawAdvance,
		HeightOffset:    c.HeightOffset,
	}
}
