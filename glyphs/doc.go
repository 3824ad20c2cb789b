// Package glyphs renders the glyphs of a font into a single packed
// grayscale bitmap.
//
// A Font is parsed by one of the registered parser backends:
//
//   - "ximage" (default) uses golang.org/x/image/font/opentype faces.
//   - "gotext" reads outlines with github.com/go-text/typesetting and fills
//     them with golang.org/x/image/vector.
//
// MakeAtlas renders every requested codepoint the font maps, then packs the
// glyph masks with a shelf allocator into a bitmap that starts at the
// requested size and doubles until everything fits.
//
// # Usage
//
//	f, err := glyphs.LoadFont("Go-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	atlas, err := f.MakeAtlas(64, 8, 64, 64, blocks.Select([]string{"Basic Latin"}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// atlas.Bitmap holds white glyphs on black, atlas.Chars their placement.
package glyphs
