package glyphs

import (
	"image"
	"log/slog"
	"sort"

	"golang.org/x/image/draw"
	"golang.org/x/text/unicode/rangetable"

	"github.com/gogpu/fontatlas/blocks"
)

// CharInfo describes where a glyph sits in an Atlas bitmap and how to
// advance the pen around it. All values are in bitmap pixels.
type CharInfo struct {
	// Rune is the codepoint the glyph was rendered for.
	Rune rune

	// FontSize is the pixel size the glyph was rendered at.
	FontSize float32

	// BoundingBox is the glyph's drawn extent in the bitmap,
	// excluding the margin around it.
	BoundingBox image.Rectangle

	// PreDrawAdvance is how far the pen moves right before drawing.
	PreDrawAdvance float32

	// PostDrawAdvance is how far the pen moves right after drawing.
	PostDrawAdvance float32

	// HeightOffset is the vertical pen adjustment for drawing this glyph
	// only, y pointing down from the baseline.
	HeightOffset float32
}

// Atlas is a packed glyph bitmap with per-glyph placement.
type Atlas struct {
	// Bitmap holds white glyphs on black. It is square.
	Bitmap *image.Gray

	// Chars maps each rendered codepoint to its placement.
	Chars map[rune]CharInfo

	// LineHeight is the baseline to baseline distance in pixels.
	LineHeight float32
}

// Width returns the bitmap width, or 0 for a nil bitmap.
func (a *Atlas) Width() int {
	if a == nil || a.Bitmap == nil {
		return 0
	}
	return a.Bitmap.Rect.Dx()
}

// renderedGlyph is a glyph waiting to be packed.
type renderedGlyph struct {
	r     rune
	img   *GlyphImage
	x, y  int // cell position, set by pack
	cellW int
	cellH int
}

// MakeAtlas renders the codepoints of ranges at size pixels per em and
// packs them into one bitmap, leaving margin pixels around every glyph.
//
// Packing starts with a width x height bitmap (64x64 when either is not
// positive, squared to the larger side) and doubles it until all glyphs
// fit. Codepoints the font does not map are skipped; each codepoint is
// rendered once even if ranges overlap.
func (f *Font) MakeAtlas(size float32, margin, width, height int, ranges []blocks.Range) (*Atlas, error) {
	log := f.config.logger
	margin = max(margin, 0)

	var rendered []*renderedGlyph
	skipped := 0
	rangetable.Visit(blocks.Table(ranges), func(r rune) {
		img, ok := f.parsed.Glyph(r, float64(size))
		if !ok {
			skipped++
			return
		}
		rendered = append(rendered, &renderedGlyph{
			r:     r,
			img:   img,
			cellW: img.Bounds.Dx() + 2*margin,
			cellH: img.Bounds.Dy() + 2*margin,
		})
	})
	log.Debug("glyphs: rendered", slog.Int("glyphs", len(rendered)), slog.Int("skipped", skipped))

	// Tallest first, then widest; rune order keeps the layout deterministic.
	sort.Slice(rendered, func(i, j int) bool {
		a, b := rendered[i], rendered[j]
		if a.cellH != b.cellH {
			return a.cellH > b.cellH
		}
		if a.cellW != b.cellW {
			return a.cellW > b.cellW
		}
		return a.r < b.r
	})

	side := max(width, height)
	if width <= 0 || height <= 0 {
		side = 64
	}

	for !pack(rendered, side, log) {
		if side*2 > f.config.maxSize {
			return nil, &AtlasTooLargeError{MaxSize: f.config.maxSize, Glyphs: len(rendered)}
		}
		side *= 2
	}

	bitmap := image.NewGray(image.Rect(0, 0, side, side))
	chars := make(map[rune]CharInfo, len(rendered))
	for _, g := range rendered {
		bounds := g.img.Bounds
		box := image.Rect(0, 0, bounds.Dx(), bounds.Dy()).Add(image.Pt(g.x+margin, g.y+margin))
		if !box.Empty() {
			draw.Draw(bitmap, box, g.img.Mask, bounds.Min, draw.Src)
		}

		chars[g.r] = CharInfo{
			Rune:            g.r,
			FontSize:        size,
			BoundingBox:     box,
			PreDrawAdvance:  float32(bounds.Min.X),
			PostDrawAdvance: float32(g.img.Advance) - float32(bounds.Min.X),
			HeightOffset:    float32(bounds.Min.Y),
		}
	}

	return &Atlas{
		Bitmap:     bitmap,
		Chars:      chars,
		LineHeight: float32(f.parsed.LineHeight(float64(size))),
	}, nil
}

// pack assigns cell positions in a side x side bitmap.
// It reports false if any glyph does not fit.
func pack(rendered []*renderedGlyph, side int, log *slog.Logger) bool {
	alloc := NewShelfAllocator(side, side, 0)
	for _, g := range rendered {
		x, y, ok := alloc.Allocate(g.cellW, g.cellH)
		if !ok {
			log.Debug("glyphs: bitmap too small", slog.Int("size", side))
			return false
		}
		g.x, g.y = x, y
	}
	log.Debug("glyphs: packed",
		slog.Int("size", side),
		slog.Int("shelves", alloc.ShelfCount()),
		slog.Int("usedArea", alloc.UsedArea()),
		slog.Float64("utilization", alloc.Utilization()))
	return true
}
