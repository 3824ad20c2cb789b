// Package sdf converts grayscale glyph bitmaps into signed distance fields.
//
// Each output pixel encodes the distance to the nearest glyph edge:
// 128 lies on the edge, larger values are inside the glyph and smaller
// values outside. Distances are clamped to a maximum distance measured in
// source pixels, so the full byte range spans [-max, +max].
//
// The field is computed at source resolution with an exact Euclidean
// distance transform and then resampled to the requested size, which is
// how a large, finely rendered atlas becomes a small texture that still
// scales cleanly in a shader:
//
//	fn sdf_alpha(v: f32) -> f32 {
//	    return smoothstep(0.5 - w, 0.5 + w, v);
//	}
package sdf

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Transformer converts a coverage bitmap into a distance field of the
// given size. maxDistance is the clamp distance in source pixels.
type Transformer interface {
	Transform(src *image.Gray, width, height, maxDistance int) *image.Gray
}

// Options configures a Generator.
type Options struct {
	// Threshold is the coverage value at or above which a source pixel
	// counts as inside the glyph.
	// Default: 128
	Threshold uint8

	// Interpolator resamples the field to the output size.
	// Default: draw.CatmullRom
	Interpolator draw.Interpolator
}

// DefaultOptions returns the default generator options.
func DefaultOptions() Options {
	return Options{
		Threshold:    128,
		Interpolator: draw.CatmullRom,
	}
}

// Generator is the default Transformer.
type Generator struct {
	opts Options
}

// NewGenerator creates a generator. Zero fields of opts take their defaults.
func NewGenerator(opts Options) *Generator {
	def := DefaultOptions()
	if opts.Threshold == 0 {
		opts.Threshold = def.Threshold
	}
	if opts.Interpolator == nil {
		opts.Interpolator = def.Interpolator
	}
	return &Generator{opts: opts}
}

// DefaultGenerator creates a generator with default options.
func DefaultGenerator() *Generator {
	return NewGenerator(DefaultOptions())
}

// Options returns the generator's options.
func (g *Generator) Options() Options {
	return g.opts
}

// Transform implements Transformer.
//
// A non-positive width or height yields an empty image. A maxDistance of
// zero yields a hard threshold mask.
func (g *Generator) Transform(src *image.Gray, width, height, maxDistance int) *image.Gray {
	if width <= 0 || height <= 0 || src == nil {
		return image.NewGray(image.Rectangle{})
	}

	field := g.Field(src, maxDistance)
	if field.Rect.Dx() == width && field.Rect.Dy() == height {
		return field
	}

	dst := image.NewGray(image.Rect(0, 0, width, height))
	if field.Rect.Empty() {
		return dst
	}
	g.opts.Interpolator.Scale(dst, dst.Bounds(), field, field.Bounds(), draw.Src, nil)
	return dst
}

// Field computes the encoded distance field at source resolution.
// The result has its origin at (0, 0).
func (g *Generator) Field(src *image.Gray, maxDistance int) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return dst
	}

	inside := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			inside[y*w+x] = src.GrayAt(b.Min.X+x, b.Min.Y+y).Y >= g.opts.Threshold
		}
	}

	if maxDistance <= 0 {
		for i, in := range inside {
			if in {
				dst.Pix[i] = 255
			}
		}
		return dst
	}

	// Squared distance to the nearest pixel of the other state.
	toOutside := squaredDistance(inside, w, h, false)
	toInside := squaredDistance(inside, w, h, true)

	pixelRange := float64(maxDistance)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			// Distances are measured between pixel centers; the edge lies
			// half a pixel from the nearest opposite center.
			var d float64
			if inside[i] {
				d = math.Sqrt(toOutside[i]) - 0.5
			} else {
				d = 0.5 - math.Sqrt(toInside[i])
			}
			dst.Pix[y*dst.Stride+x] = distanceToPixel(d, pixelRange)
		}
	}
	return dst
}

// distanceToPixel converts a signed distance to a pixel value [0, 255].
// 0.5 (128) represents the edge, < 0.5 is outside, > 0.5 is inside.
func distanceToPixel(distance, pixelRange float64) byte {
	normalized := 0.5 + distance/(2*pixelRange)

	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	return byte(math.Round(normalized * 255))
}
