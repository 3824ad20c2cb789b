package fontatlas

import "github.com/gogpu/fontatlas/sdf"

// BuildOption configures the capabilities used by Build.
//
// Example:
//
//	// Default: x/image rasterizer and the exact distance transform
//	atlas, img, err := fontatlas.Build(cfg)
//
//	// go-text outlines, nearest-neighbor resampling
//	atlas, img, err := fontatlas.Build(cfg,
//	    fontatlas.WithParser("gotext"),
//	    fontatlas.WithDistanceField(sdf.NewGenerator(sdf.Options{
//	        Interpolator: draw.NearestNeighbor,
//	    })))
type BuildOption func(*buildOptions)

// buildOptions holds the pluggable capabilities of a build.
type buildOptions struct {
	loader    FontLoader
	transform sdf.Transformer
	parser    string
}

// defaultBuildOptions returns the default build options.
func defaultBuildOptions() buildOptions {
	return buildOptions{
		transform: sdf.DefaultGenerator(),
	}
}

// WithFontLoader replaces the font loading and rasterization capability.
// When set, WithParser has no effect.
func WithFontLoader(l FontLoader) BuildOption {
	return func(o *buildOptions) {
		o.loader = l
	}
}

// WithDistanceField replaces the distance field capability.
func WithDistanceField(t sdf.Transformer) BuildOption {
	return func(o *buildOptions) {
		if t != nil {
			o.transform = t
		}
	}
}

// WithParser selects the glyphs parser backend used by the default loader.
// See glyphs.Parsers for the registered names.
func WithParser(name string) BuildOption {
	return func(o *buildOptions) {
		o.parser = name
	}
}
