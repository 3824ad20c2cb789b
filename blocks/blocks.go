// Package blocks maps Unicode block names to the codepoint ranges rendered
// into a font atlas.
//
// The mapping is a fixed table. Some blocks expand to several sub-ranges so
// that glyphs known to be unprintable, or drawn as placeholder boxes by the
// fonts this table was curated against, are never rasterized.
//
// Usage:
//
//	ranges := blocks.Select([]string{"Basic Latin", "Cyrillic"})
//	// [{0x0000 0x007F} {0x0400 0x04FF}]
package blocks

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Range is an inclusive range of Unicode scalar values.
type Range struct {
	Low  rune
	High rune
}

// Len returns the number of codepoints in the range.
func (r Range) Len() int {
	if r.High < r.Low {
		return 0
	}
	return int(r.High-r.Low) + 1
}

// String returns the range in U+XXXX-U+XXXX notation.
func (r Range) String() string {
	return fmt.Sprintf("U+%04X-U+%04X", r.Low, r.High)
}

// Block is a named entry of the block table.
type Block struct {
	Name   string
	Ranges []Range
}

// table is the static name to ranges mapping, in lookup order.
var table = []Block{
	{"Basic Latin", []Range{{0x0000, 0x007F}}},
	{"Specials", []Range{{0xFFF0, 0xFFFD}}},
	{"Latin-1 Supplement", []Range{{0x0080, 0x00FF}}},
	// Skips AA, AC, AF-B3, B9-BA and BC-BE, which some fonts only carry as
	// open boxes.
	{"Latin-1 Supplement PW", []Range{
		{0x0080, 0x00A9},
		{0x00AB, 0x00AB},
		{0x00AD, 0x00AE},
		{0x00B4, 0x00B8},
		{0x00BB, 0x00BB},
		{0x00BF, 0x00BF},
		{0x00C0, 0x00FF},
	}},
	{"CJK Symbols and Punctuation", []Range{{0x3000, 0x303F}}},
	{"Katakana", []Range{{0x30A0, 0x30FF}}},
	{"Hiragana", []Range{{0x3040, 0x309F}}},
	{"Cyrillic", []Range{{0x0400, 0x04FF}}},
	{"Arabic", []Range{{0x0600, 0x06FF}}},
	{"CJK Unified Ideographs 1", []Range{{0x4E00, 0x5C00}}},
	{"CJK Unified Ideographs 2", []Range{{0x5C00, 0x6800}}},
	{"CJK Unified Ideographs 3", []Range{{0x6800, 0x7400}}},
	{"CJK Unified Ideographs 4", []Range{{0x7400, 0x8000}}},
	{"CJK Unified Ideographs 5", []Range{{0x8000, 0x9000}}},
	{"CJK Unified Ideographs 6", []Range{{0x9000, 0x9FFF}}},
	// 2000-206F minus the spaces, zero-width and format controls.
	{"General Punctuation", []Range{
		{0x2010, 0x2010},
		{0x2012, 0x2027},
		{0x2030, 0x205E},
	}},
	{"Currency Symbols", []Range{{0x20A0, 0x20CF}}},
	// The misspelling is part of the accepted command line vocabulary.
	{"Latin Extented-A", []Range{{0x0100, 0x017F}}},
	{"Spacing Modifier Letters", []Range{{0x02B0, 0x02FF}}},
	{"Box Drawing", []Range{{0x2500, 0x257F}}},
	{"Runic", []Range{{0x16A0, 0x16FF}}},
}

// Select expands block names into codepoint ranges.
// Ranges are returned in the order the names were given. Repeated names
// repeat their ranges and unknown names are ignored.
func Select(names []string) []Range {
	var ranges []Range
	for _, name := range names {
		if rs, ok := Lookup(name); ok {
			ranges = append(ranges, rs...)
		}
	}
	return ranges
}

// Lookup returns the ranges of a single block.
// The returned slice is a copy and may be modified by the caller.
func Lookup(name string) ([]Range, bool) {
	for _, b := range table {
		if b.Name == name {
			return append([]Range(nil), b.Ranges...), true
		}
	}
	return nil, false
}

// Names returns the known block names in table order.
func Names() []string {
	names := make([]string, len(table))
	for i, b := range table {
		names[i] = b.Name
	}
	return names
}

// Table merges ranges into a single range table.
// Overlapping and repeated ranges are collapsed, so visiting the table
// yields each codepoint once, in ascending order. Ranges are clipped to
// [0, unicode.MaxRune]; empty ranges are skipped.
func Table(ranges []Range) *unicode.RangeTable {
	tables := make([]*unicode.RangeTable, 0, len(ranges))
	for _, r := range ranges {
		r.Low = max(r.Low, 0)
		r.High = min(r.High, unicode.MaxRune)
		if r.Len() == 0 {
			continue
		}
		tables = append(tables, rangeTable(r))
	}
	return rangetable.Merge(tables...)
}

// rangeTable converts a single contiguous range to a range table.
func rangeTable(r Range) *unicode.RangeTable {
	rt := &unicode.RangeTable{}
	if r.High <= 0xFFFF {
		rt.R16 = []unicode.Range16{{Lo: uint16(r.Low), Hi: uint16(r.High), Stride: 1}}
		if r.High <= unicode.MaxLatin1 {
			rt.LatinOffset = 1
		}
		return rt
	}
	if r.Low <= 0xFFFF {
		rt.R16 = []unicode.Range16{{Lo: uint16(r.Low), Hi: 0xFFFF, Stride: 1}}
		rt.R32 = []unicode.Range32{{Lo: 0x10000, Hi: uint32(r.High), Stride: 1}}
		return rt
	}
	rt.R32 = []unicode.Range32{{Lo: uint32(r.Low), Hi: uint32(r.High), Stride: 1}}
	return rt
}
