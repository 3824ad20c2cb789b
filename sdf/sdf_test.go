package sdf

import (
	"image"
	"math"
	"math/rand/v2"
	"testing"

	"golang.org/x/image/draw"
)

// square returns a size x size bitmap with a filled square [lo, hi) on both axes.
func square(size, lo, hi int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := lo; y < hi; y++ {
		for x := lo; x < hi; x++ {
			img.Pix[y*img.Stride+x] = 255
		}
	}
	return img
}

func TestDistanceToPixel(t *testing.T) {
	tests := []struct {
		distance float64
		want     byte
	}{
		{0, 128},
		{4, 255},
		{100, 255},
		{-4, 0},
		{-100, 0},
		{2, 191},
		{-2, 64},
	}

	for _, tt := range tests {
		if got := distanceToPixel(tt.distance, 4); got != tt.want {
			t.Errorf("distanceToPixel(%v, 4) = %d, want %d", tt.distance, got, tt.want)
		}
	}
}

func TestSquaredDistance_BruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	const w, h = 17, 11

	inside := make([]bool, w*h)
	for i := range inside {
		inside[i] = rng.IntN(4) == 0
	}

	got := squaredDistance(inside, w, h, true)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := math.Inf(1)
			for yy := 0; yy < h; yy++ {
				for xx := 0; xx < w; xx++ {
					if !inside[yy*w+xx] {
						continue
					}
					dx, dy := float64(x-xx), float64(y-yy)
					want = min(want, dx*dx+dy*dy)
				}
			}
			if got[y*w+x] != want {
				t.Fatalf("(%d,%d): got %v, want %v", x, y, got[y*w+x], want)
			}
		}
	}
}

func TestSquaredDistance_NoTarget(t *testing.T) {
	got := squaredDistance(make([]bool, 9), 3, 3, true)
	for i, d := range got {
		if d < far {
			t.Errorf("pixel %d: distance %v below far with no target pixels", i, d)
		}
	}
}

func TestField(t *testing.T) {
	g := DefaultGenerator()
	src := square(32, 8, 24)

	field := g.Field(src, 8)
	if field.Rect != src.Rect {
		t.Fatalf("field bounds %v, want %v", field.Rect, src.Rect)
	}

	// Nearest outside center is 8 px away: 7.5 px to the edge.
	center := field.GrayAt(16, 16).Y
	if center != 247 {
		t.Errorf("center = %d, want 247", center)
	}
	corner := field.GrayAt(0, 0).Y
	if corner != 0 {
		t.Errorf("far outside = %d, want 0", corner)
	}

	// One pixel on each side of the left edge.
	in := field.GrayAt(8, 16).Y
	out := field.GrayAt(7, 16).Y
	if in <= 128 || out >= 128 {
		t.Errorf("edge pixels inside=%d outside=%d, want inside > 128 > outside", in, out)
	}
	if int(in)+int(out) != 255 {
		t.Errorf("edge pixels not symmetric: %d + %d", in, out)
	}
}

func TestField_HardThreshold(t *testing.T) {
	field := DefaultGenerator().Field(square(8, 2, 6), 0)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := uint8(0)
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				want = 255
			}
			if got := field.GrayAt(x, y).Y; got != want {
				t.Errorf("(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestField_OffsetBounds(t *testing.T) {
	src := square(16, 4, 12).SubImage(image.Rect(4, 4, 12, 12)).(*image.Gray)
	field := DefaultGenerator().Field(src, 4)
	if field.Rect != image.Rect(0, 0, 8, 8) {
		t.Errorf("field bounds %v, want origin-based 8x8", field.Rect)
	}
	for _, v := range field.Pix {
		if v != 255 {
			t.Fatalf("sub-image with no outside pixels produced %d, want 255", v)
		}
	}
}

func TestTransform(t *testing.T) {
	g := DefaultGenerator()

	tests := []struct {
		name          string
		src           *image.Gray
		width, height int
		check         func(t *testing.T, dst *image.Gray)
	}{
		{
			name:  "downsample",
			src:   square(64, 16, 48),
			width: 16, height: 16,
			check: func(t *testing.T, dst *image.Gray) {
				if c := dst.GrayAt(8, 8).Y; c <= 200 {
					t.Errorf("center = %d, want well inside", c)
				}
				if c := dst.GrayAt(0, 0).Y; c >= 50 {
					t.Errorf("corner = %d, want well outside", c)
				}
			},
		},
		{
			name:  "upsample",
			src:   square(8, 2, 6),
			width: 32, height: 32,
			check: func(t *testing.T, dst *image.Gray) {
				if c := dst.GrayAt(16, 16).Y; c <= 128 {
					t.Errorf("center = %d, want inside", c)
				}
			},
		},
		{
			name:  "black",
			src:   image.NewGray(image.Rect(0, 0, 16, 16)),
			width: 8, height: 8,
			check: func(t *testing.T, dst *image.Gray) {
				for _, v := range dst.Pix {
					if v != 0 {
						t.Fatalf("black source produced %d", v)
					}
				}
			},
		},
		{
			name:  "empty output",
			src:   square(8, 2, 6),
			width: 0, height: 8,
			check: func(t *testing.T, dst *image.Gray) {
				if !dst.Rect.Empty() {
					t.Errorf("expected empty image, got %v", dst.Rect)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := g.Transform(tt.src, tt.width, tt.height, 4)
			if tt.width > 0 && tt.height > 0 && dst.Rect != image.Rect(0, 0, tt.width, tt.height) {
				t.Fatalf("bounds %v, want %dx%d", dst.Rect, tt.width, tt.height)
			}
			tt.check(t, dst)
		})
	}
}

func TestNewGenerator_Defaults(t *testing.T) {
	g := NewGenerator(Options{})
	opts := g.Options()
	if opts.Threshold != 128 {
		t.Errorf("Threshold = %d, want 128", opts.Threshold)
	}
	if opts.Interpolator != draw.CatmullRom {
		t.Error("Interpolator does not default to CatmullRom")
	}

	g = NewGenerator(Options{Threshold: 1, Interpolator: draw.NearestNeighbor})
	if g.Options().Threshold != 1 || g.Options().Interpolator != draw.NearestNeighbor {
		t.Error("explicit options were overridden")
	}
}

func TestGenerator_ImplementsTransformer(t *testing.T) {
	var _ Transformer = DefaultGenerator()
}
