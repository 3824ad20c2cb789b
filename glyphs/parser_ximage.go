package glyphs

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyphs: failed to parse font: %w", err)
	}
	return &ximageParsedFont{
		font:  f,
		faces: make(map[float64]font.Face),
	}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
type ximageParsedFont struct {
	font *opentype.Font
	buf  sfnt.Buffer

	// faces caches one face per size. Faces own a rasterizer and are reused
	// for every glyph of an atlas.
	faces map[float64]font.Face
}

// HasGlyph implements ParsedFont.HasGlyph.
func (f *ximageParsedFont) HasGlyph(r rune) bool {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	return err == nil && idx != 0
}

// Glyph implements ParsedFont.Glyph.
func (f *ximageParsedFont) Glyph(r rune, ppem float64) (*GlyphImage, bool) {
	if !f.HasGlyph(r) {
		return nil, false
	}

	face, err := f.face(ppem)
	if err != nil {
		return nil, false
	}

	dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return nil, false
	}

	// The face reuses its mask buffer between calls.
	img := image.NewAlpha(dr)
	if !dr.Empty() {
		draw.Draw(img, dr, mask, maskp, draw.Src)
	}

	return &GlyphImage{
		Mask:    img,
		Bounds:  dr,
		Advance: fixedToFloat64(advance),
	}, true
}

// LineHeight implements ParsedFont.LineHeight.
func (f *ximageParsedFont) LineHeight(ppem float64) float64 {
	face, err := f.face(ppem)
	if err != nil {
		return 0
	}
	return fixedToFloat64(face.Metrics().Height)
}

// face returns the cached face for ppem, creating it on first use.
func (f *ximageParsedFont) face(ppem float64) (font.Face, error) {
	if face, ok := f.faces[ppem]; ok {
		return face, nil
	}

	// DPI 72 makes Size equal to pixels per em.
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    ppem,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("glyphs: failed to create face: %w", err)
	}
	f.faces[ppem] = face
	return face, nil
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
