package glyphs

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/vector"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
// Outlines are read from the font and filled with golang.org/x/image/vector,
// which makes it usable for fonts the opentype package rejects.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("glyphs: failed to parse font: %w", err)
	}
	return &gotextParsedFont{face: face}, nil
}

// gotextParsedFont implements ParsedFont using a go-text font.Face.
// font.Face is NOT safe for concurrent use.
type gotextParsedFont struct {
	face *font.Face
}

// HasGlyph implements ParsedFont.HasGlyph.
func (f *gotextParsedFont) HasGlyph(r rune) bool {
	gid, ok := f.face.NominalGlyph(r)
	return ok && gid != 0
}

// Glyph implements ParsedFont.Glyph.
func (f *gotextParsedFont) Glyph(r rune, ppem float64) (*GlyphImage, bool) {
	gid, ok := f.face.NominalGlyph(r)
	if !ok || gid == 0 {
		return nil, false
	}

	scale := float32(ppem) / float32(f.face.Upem())
	advance := float64(f.face.HorizontalAdvance(gid) * scale)

	outline, ok := f.face.GlyphData(gid).(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		// Bitmap-only and empty glyphs keep their advance but carry no ink.
		return &GlyphImage{Mask: image.NewAlpha(image.Rectangle{}), Advance: advance}, true
	}

	bounds := outlineBounds(outline, scale)
	if bounds.Empty() {
		return &GlyphImage{Mask: image.NewAlpha(image.Rectangle{}), Advance: advance}, true
	}

	return &GlyphImage{
		Mask:    fillOutline(outline, scale, bounds),
		Bounds:  bounds,
		Advance: advance,
	}, true
}

// LineHeight implements ParsedFont.LineHeight.
func (f *gotextParsedFont) LineHeight(ppem float64) float64 {
	extents, ok := f.face.FontHExtents()
	if !ok {
		return ppem
	}
	scale := ppem / float64(f.face.Upem())
	return float64(extents.Ascender-extents.Descender+extents.LineGap) * scale
}

// segmentPoints returns how many Args a segment op uses.
func segmentPoints(op ot.SegmentOp) int {
	switch op {
	case ot.SegmentOpQuadTo:
		return 2
	case ot.SegmentOpCubeTo:
		return 3
	default:
		return 1
	}
}

// outlineBounds returns the pixel bounds of the scaled outline, y pointing down.
func outlineBounds(outline font.GlyphOutline, scale float32) image.Rectangle {
	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := float32(-math.MaxFloat32), float32(-math.MaxFloat32)

	for _, seg := range outline.Segments {
		for i := 0; i < segmentPoints(seg.Op); i++ {
			x := seg.Args[i].X * scale
			y := -seg.Args[i].Y * scale
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}

	return image.Rect(
		int(math.Floor(float64(minX))),
		int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))),
		int(math.Ceil(float64(maxY))),
	)
}

// fillOutline rasterizes the scaled outline into a mask covering bounds.
func fillOutline(outline font.GlyphOutline, scale float32, bounds image.Rectangle) *image.Alpha {
	w, h := bounds.Dx(), bounds.Dy()
	z := vector.NewRasterizer(w, h)

	dx, dy := float32(-bounds.Min.X), float32(-bounds.Min.Y)
	pt := func(x, y float32) (float32, float32) {
		return x*scale + dx, -y*scale + dy
	}

	started := false
	for _, seg := range outline.Segments {
		a := seg.Args
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if started {
				z.ClosePath()
			}
			z.MoveTo(pt(a[0].X, a[0].Y))
			started = true
		case ot.SegmentOpLineTo:
			z.LineTo(pt(a[0].X, a[0].Y))
		case ot.SegmentOpQuadTo:
			bx, by := pt(a[0].X, a[0].Y)
			cx, cy := pt(a[1].X, a[1].Y)
			z.QuadTo(bx, by, cx, cy)
		case ot.SegmentOpCubeTo:
			bx, by := pt(a[0].X, a[0].Y)
			cx, cy := pt(a[1].X, a[1].Y)
			ex, ey := pt(a[2].X, a[2].Y)
			z.CubeTo(bx, by, cx, cy, ex, ey)
		}
	}
	if started {
		z.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	// Rebase onto the glyph origin.
	dst.Rect = bounds
	return dst
}
