// Package fontatlas builds signed distance field font atlases.
//
// # Overview
//
// A build renders the requested codepoints of a TTF or OTF font into one
// large grayscale bitmap, converts that bitmap into a smaller distance
// field texture, and scales the per-glyph metadata to the texture's
// resolution. The metadata (FontAtlas) and the texture are separate
// artifacts: the first is stored in a compact binary form, the second
// as a DDS texture (see package dds).
//
// # Quick Start
//
//	cfg := fontatlas.DefaultConfig()
//	cfg.FontPath = "Go-Regular.ttf"
//	cfg.Ranges = blocks.Select([]string{"Basic Latin", "Cyrillic"})
//
//	atlas, texture, err := fontatlas.Build(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := dds.WriteFile("Go-Regular.dds", texture); err != nil {
//	    log.Fatal(err)
//	}
//	if err := atlas.WriteFile("Go-Regular.bin"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Coordinates
//
// Rasterization happens at Config.FontSize with Config.Margin pixels of
// padding around each glyph. The resulting bitmap width divided by
// Config.Width is the shrink factor; every CharacterInfo field, LineHeight,
// FontSize and Margin are divided by it. Bounding boxes use a top-left
// origin. HeightOffset is the distance from the baseline to the top of the
// glyph box, y pointing down, so it is negative for glyphs that rise above
// the baseline.
//
// # Capabilities
//
// Glyph rasterization (Rasterizer, FontLoader) and the distance field
// transform (sdf.Transformer) are interfaces. The defaults come from the
// glyphs and sdf packages and can be replaced with WithFontLoader and
// WithDistanceField.
//
// # Logging
//
// fontatlas logs nothing by default. Use SetLogger to enable output.
package fontatlas
