// Package dds reads and writes single-channel textures in the DirectDraw
// Surface container.
//
// Files carry the DX10 extended header with DXGI_FORMAT_R8_UNORM, a 2D
// resource dimension, opaque alpha mode and a single mip level. Pixels
// follow the headers uncompressed, one byte per texel, row by row.
package dds

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/gogpu/gputypes"
)

const (
	magic = 0x20534444 // "DDS "
	dx10  = 0x30315844 // "DX10"

	headerSize      = 124
	pixelFormatSize = 32

	flagCaps        = 0x1
	flagHeight      = 0x2
	flagWidth       = 0x4
	flagPitch       = 0x8
	flagPixelFormat = 0x1000
	flagMipMapCount = 0x20000

	pixelFourCC    = 0x4
	pixelLuminance = 0x20000

	capsTexture = 0x1000

	dxgiFormatR8Unorm = 61

	resourceDimensionTexture2D = 3
	alphaModeOpaque            = 3

	// MaxSize is the largest texture side Decode accepts. It matches the
	// largest bitmap the glyphs package packs into.
	MaxSize = 16384

	// maxPitch bounds the row stride Decode accepts.
	maxPitch = 4 * MaxSize
)

type pixelFormat struct {
	Size        uint32
	Flags       uint32
	FourCC      uint32
	RGBBitCount uint32
	RBitMask    uint32
	GBitMask    uint32
	BBitMask    uint32
	ABitMask    uint32
}

type header struct {
	Size              uint32
	Flags             uint32
	Height            uint32
	Width             uint32
	PitchOrLinearSize uint32
	Depth             uint32
	MipMapCount       uint32
	Reserved1         [11]uint32
	PixelFormat       pixelFormat
	Caps              uint32
	Caps2             uint32
	Caps3             uint32
	Caps4             uint32
	Reserved2         uint32
}

type headerDX10 struct {
	DXGIFormat        uint32
	ResourceDimension uint32
	MiscFlag          uint32
	ArraySize         uint32
	MiscFlags2        uint32
}

// TextureInfo describes the GPU texture a DDS file is uploaded into.
type TextureInfo struct {
	Label         string
	Width         uint32
	Height        uint32
	MipLevelCount uint32
	Dimension     gputypes.TextureDimension
	Format        gputypes.TextureFormat
	Usage         gputypes.TextureUsage
}

// Describe returns the texture description for img as written by Encode.
func Describe(img *image.Gray) TextureInfo {
	b := img.Bounds()
	return TextureInfo{
		Label:         "font_atlas",
		Width:         uint32(b.Dx()), //nolint:gosec // image sides are non-negative
		Height:        uint32(b.Dy()), //nolint:gosec // image sides are non-negative
		MipLevelCount: 1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatR8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}
}

// dxgiFormat maps a texture format to its DXGI code and byte size per texel.
func dxgiFormat(f gputypes.TextureFormat) (code uint32, bytesPerTexel int, ok bool) {
	switch f {
	case gputypes.TextureFormatR8Unorm:
		return dxgiFormatR8Unorm, 1, true
	default:
		return 0, 0, false
	}
}

// Encode writes img to w as an uncompressed R8 DDS texture.
func Encode(w io.Writer, img *image.Gray) error {
	info := Describe(img)
	format, bpp, ok := dxgiFormat(info.Format)
	if !ok {
		return fmt.Errorf("%w: texture format %v", ErrUnsupportedFormat, info.Format)
	}
	pitch := info.Width * uint32(bpp) //nolint:gosec // bpp is small and positive

	h := header{
		Size:              headerSize,
		Flags:             flagCaps | flagHeight | flagWidth | flagPitch | flagPixelFormat | flagMipMapCount,
		Height:            info.Height,
		Width:             info.Width,
		PitchOrLinearSize: pitch,
		MipMapCount:       info.MipLevelCount,
		PixelFormat: pixelFormat{
			Size:   pixelFormatSize,
			Flags:  pixelFourCC,
			FourCC: dx10,
		},
		Caps: capsTexture,
	}
	ext := headerDX10{
		DXGIFormat:        format,
		ResourceDimension: resourceDimensionTexture2D,
		ArraySize:         1,
		MiscFlags2:        alphaModeOpaque,
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(magic)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, &ext); err != nil {
		return err
	}

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		if _, err := w.Write(img.Pix[off : off+b.Dx()]); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes img to the named file with Encode.
func WriteFile(path string, img *image.Gray) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	if err := Encode(bw, img); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Decode reads the top mip level of a single-channel 8-bit DDS texture.
// Both the DX10 R8_UNORM form written by Encode and the legacy 8-bit
// luminance form are accepted.
func Decode(r io.Reader) (*image.Gray, error) {
	var m uint32
	if err := binary.Read(r, binary.LittleEndian, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotDDS, err)
	}
	if m != magic {
		return nil, ErrNotDDS
	}

	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("dds: reading header: %w", err)
	}
	if h.Size != headerSize || h.PixelFormat.Size != pixelFormatSize {
		return nil, ErrNotDDS
	}

	if err := checkPixelFormat(r, h.PixelFormat); err != nil {
		return nil, err
	}

	if h.Width > MaxSize || h.Height > MaxSize {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrUnsupportedFormat, h.Width, h.Height, MaxSize)
	}
	width, height := int(h.Width), int(h.Height)

	pitch := width
	if h.Flags&flagPitch != 0 && int(h.PitchOrLinearSize) > width {
		if h.PitchOrLinearSize > maxPitch {
			return nil, fmt.Errorf("%w: pitch %d exceeds %d", ErrUnsupportedFormat, h.PitchOrLinearSize, maxPitch)
		}
		pitch = int(h.PitchOrLinearSize)
	}

	// Pixels grow with the rows actually read, so a header claiming a
	// large texture costs nothing until its data arrives.
	pix := make([]byte, 0, min(width*height, 1<<20))
	row := make([]byte, pitch)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(r, row); err != nil {
			return nil, fmt.Errorf("dds: reading row %d: %w", y, err)
		}
		pix = append(pix, row[:width]...)
	}
	return &image.Gray{
		Pix:    pix,
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// ReadFile decodes the named DDS file.
func ReadFile(path string) (*image.Gray, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return Decode(bufio.NewReader(f))
}

// checkPixelFormat consumes the DX10 header when present and verifies the
// texels are single 8-bit values.
func checkPixelFormat(r io.Reader, pf pixelFormat) error {
	switch {
	case pf.Flags&pixelFourCC != 0 && pf.FourCC == dx10:
		var ext headerDX10
		if err := binary.Read(r, binary.LittleEndian, &ext); err != nil {
			return fmt.Errorf("dds: reading DX10 header: %w", err)
		}
		if ext.DXGIFormat != dxgiFormatR8Unorm {
			return fmt.Errorf("%w: DXGI format %d", ErrUnsupportedFormat, ext.DXGIFormat)
		}
		if ext.ResourceDimension != resourceDimensionTexture2D {
			return fmt.Errorf("%w: resource dimension %d", ErrUnsupportedFormat, ext.ResourceDimension)
		}
		if ext.ArraySize > 1 {
			return fmt.Errorf("%w: array size %d", ErrUnsupportedFormat, ext.ArraySize)
		}
		return nil
	case pf.Flags&pixelLuminance != 0 && pf.RGBBitCount == 8:
		return nil
	default:
		return fmt.Errorf("%w: pixel format flags %#x", ErrUnsupportedFormat, pf.Flags)
	}
}
