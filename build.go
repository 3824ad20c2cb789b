package fontatlas

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"

	"github.com/gogpu/fontatlas/blocks"
	"github.com/gogpu/fontatlas/glyphs"
)

// initialSize is the side of the bitmap the rasterizer starts packing into.
const initialSize = 64

// Rasterizer renders codepoints into a packed high-resolution bitmap.
// *glyphs.Font implements it.
type Rasterizer interface {
	MakeAtlas(size float32, margin, width, height int, ranges []blocks.Range) (*glyphs.Atlas, error)
}

// FontLoader opens a font file as a Rasterizer.
type FontLoader interface {
	LoadFont(path string) (Rasterizer, error)
}

// FontLoaderFunc adapts a function to FontLoader.
type FontLoaderFunc func(path string) (Rasterizer, error)

// LoadFont calls f(path).
func (f FontLoaderFunc) LoadFont(path string) (Rasterizer, error) {
	return f(path)
}

// glyphsLoader loads fonts with the glyphs package.
type glyphsLoader struct {
	parser string
	logger *slog.Logger
}

func (l glyphsLoader) LoadFont(path string) (Rasterizer, error) {
	opts := []glyphs.Option{glyphs.WithLogger(l.logger)}
	if l.parser != "" {
		opts = append(opts, glyphs.WithParser(l.parser))
	}
	f, err := glyphs.LoadFont(path, opts...)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Build rasterizes the configured font at high resolution, converts the
// bitmap into a cfg.Width square distance field and returns the atlas
// metadata scaled to match it.
//
// The high-resolution bitmap starts at 64x64 and grows until every glyph
// fits; its width divided by cfg.Width is the shrink factor applied to all
// metadata. A target wider than the high-resolution bitmap upsamples.
func Build(cfg Config, opts ...BuildOption) (*FontAtlas, *image.Gray, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := Logger()
	loader := o.loader
	if loader == nil {
		loader = glyphsLoader{parser: o.parser, logger: log}
	}

	font, err := loader.LoadFont(cfg.FontPath)
	if err != nil {
		return nil, nil, &FontLoadError{Path: cfg.FontPath, Err: err}
	}

	big, err := font.MakeAtlas(cfg.FontSize, cfg.Margin, initialSize, initialSize, cfg.Ranges)
	if err != nil {
		return nil, nil, fmt.Errorf("fontatlas: rasterizing %s: %w", cfg.FontPath, err)
	}
	log.Info("rasterized font",
		slog.String("font", cfg.FontPath),
		slog.Int("size", big.Width()),
		slog.Int("glyphs", len(big.Chars)))

	shrink := Shrink(big.Width(), cfg.Width)
	name := FontName(cfg.FontPath)

	if cfg.WriteBigPNG {
		path := filepath.Join(outputDir(cfg.OutputDir), name+".png")
		if err := writePNG(path, big.Bitmap); err != nil {
			return nil, nil, fmt.Errorf("fontatlas: writing %s: %w", path, err)
		}
		log.Debug("wrote high-resolution bitmap", slog.String("path", path))
	}

	field := o.transform.Transform(big.Bitmap, cfg.Width, cfg.Width, cfg.Margin)
	log.Debug("distance field",
		slog.Int("width", cfg.Width),
		slog.Int("maxDistance", cfg.Margin),
		slog.Float64("shrink", float64(shrink)))

	atlas := &FontAtlas{
		FontName:   name,
		LineHeight: big.LineHeight / shrink,
		FontSize:   cfg.FontSize / shrink,
		Margin:     float32(cfg.Margin) / shrink,
		Map:        make(map[rune]CharacterInfo, len(big.Chars)),
	}
	for r, c := range big.Chars {
		atlas.Map[r] = Rescale(fromGlyph(c), shrink)
	}
	return atlas, field, nil
}

// Shrink returns the factor that maps high-resolution pixels to target
// pixels: bigWidth / width.
func Shrink(bigWidth, width int) float32 {
	return float32(bigWidth) / float32(width)
}

// Rescale divides every field of c by shrink.
func Rescale(c CharacterInfo, shrink float32) CharacterInfo {
	return CharacterInfo{
		InnerBoundingBox: Rect{
			X: c.InnerBoundingBox.X / shrink,
			Y: c.InnerBoundingBox.Y / shrink,
			W: c.InnerBoundingBox.W / shrink,
			H: c.InnerBoundingBox.H / shrink,
		},
		PreDrawAdvance:  c.PreDrawAdvance / shrink,
		PostDrawAdvance: c.PostDrawAdvance / shrink,
		HeightOffset:    c.HeightOffset / shrink,
	}
}

func outputDir(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}
