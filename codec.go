package fontatlas

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"
)

// The binary form is little-endian with no header or version:
//
//	u64 name length, name bytes
//	f32 line height, f32 font size, f32 margin
//	u64 entry count
//	entries: char as UTF-8 (1-4 bytes), f32 x, y, w, h,
//	         f32 pre-draw advance, post-draw advance, height offset
//
// Encode writes entries in ascending codepoint order; Decode accepts any order.

// Encode writes the binary form of a to w. Keys that are not valid
// Unicode scalar values are rejected before anything is written.
func Encode(w io.Writer, a *FontAtlas) error {
	runes := a.Runes()
	for _, r := range runes {
		if !utf8.ValidRune(r) {
			return fmt.Errorf("fontatlas: invalid char %#x in map", r)
		}
	}

	e := encoder{w: w}
	e.u64(uint64(len(a.FontName)))
	e.write([]byte(a.FontName))
	e.f32(a.LineHeight)
	e.f32(a.FontSize)
	e.f32(a.Margin)
	e.u64(uint64(len(a.Map)))
	for _, r := range runes {
		c := a.Map[r]
		e.char(r)
		e.f32(c.InnerBoundingBox.X)
		e.f32(c.InnerBoundingBox.Y)
		e.f32(c.InnerBoundingBox.W)
		e.f32(c.InnerBoundingBox.H)
		e.f32(c.PreDrawAdvance)
		e.f32(c.PostDrawAdvance)
		e.f32(c.HeightOffset)
	}
	return e.err
}

// Decode reads one atlas in binary form from r. Bytes after the atlas are
// left unread. All failures are *DecodeError.
func Decode(r io.Reader) (*FontAtlas, error) {
	d := decoder{r: r}
	a := d.atlas()
	if d.err != nil {
		return nil, d.err
	}
	return a, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (a *FontAtlas) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, a); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Unlike Decode it
// rejects data that continues past the atlas.
func (a *FontAtlas) UnmarshalBinary(data []byte) error {
	br := bytes.NewReader(data)
	d := decoder{r: br}
	decoded := d.atlas()
	if d.err != nil {
		return d.err
	}
	if br.Len() != 0 {
		return &DecodeError{Offset: d.off, Err: errTrailingData}
	}
	*a = *decoded
	return nil
}

// WriteFile writes the binary form of a to the named file.
func (a *FontAtlas) WriteFile(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	if err := Encode(bw, a); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ReadFile decodes the named atlas file.
func ReadFile(path string) (*FontAtlas, error) {
	// #nosec G304 -- atlas file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	a := new(FontAtlas)
	if err := a.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return a, nil
}

type encoder struct {
	w   io.Writer
	buf [8]byte
	err error
}

func (e *encoder) write(p []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(p)
}

func (e *encoder) u64(v uint64) {
	binary.LittleEndian.PutUint64(e.buf[:], v)
	e.write(e.buf[:8])
}

func (e *encoder) f32(v float32) {
	binary.LittleEndian.PutUint32(e.buf[:], math.Float32bits(v))
	e.write(e.buf[:4])
}

func (e *encoder) char(r rune) {
	n := utf8.EncodeRune(e.buf[:], r)
	e.write(e.buf[:n])
}

type decoder struct {
	r   io.Reader
	off int64
	buf [8]byte
	err error
}

// fail records the first error with the current offset.
func (d *decoder) fail(err error) {
	if d.err == nil {
		d.err = &DecodeError{Offset: d.off, Err: err}
	}
}

// read fills and returns the first n bytes of d.buf.
func (d *decoder) read(n int) []byte {
	p := d.buf[:n]
	if d.err != nil {
		clear(p)
		return p
	}
	m, err := io.ReadFull(d.r, p)
	d.off += int64(m)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		d.fail(err)
		clear(p)
	}
	return p
}

func (d *decoder) u64() uint64 {
	return binary.LittleEndian.Uint64(d.read(8))
}

func (d *decoder) f32() float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(d.read(4)))
}

func (d *decoder) str() string {
	n := d.u64()
	if d.err != nil {
		return ""
	}
	if n > math.MaxInt64 {
		d.fail(errTooLong)
		return ""
	}

	var sb strings.Builder
	m, err := io.CopyN(&sb, d.r, int64(n))
	d.off += m
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		d.fail(err)
		return ""
	}
	s := sb.String()
	if !utf8.ValidString(s) {
		d.fail(errInvalidUTF8)
		return ""
	}
	return s
}

func (d *decoder) char() rune {
	lead := d.read(1)[0]
	if d.err != nil {
		return 0
	}

	var n int
	switch {
	case lead < 0x80:
		return rune(lead)
	case lead&0xE0 == 0xC0:
		n = 2
	case lead&0xF0 == 0xE0:
		n = 3
	case lead&0xF8 == 0xF0:
		n = 4
	default:
		d.fail(errInvalidChar)
		return 0
	}

	var p [utf8.UTFMax]byte
	p[0] = lead
	copy(p[1:n], d.read(n-1))
	if d.err != nil {
		return 0
	}
	// Valid rejects overlong forms, surrogates and values past MaxRune.
	if !utf8.Valid(p[:n]) {
		d.fail(errInvalidChar)
		return 0
	}
	r, _ := utf8.DecodeRune(p[:n])
	return r
}

func (d *decoder) atlas() *FontAtlas {
	a := &FontAtlas{}
	a.FontName = d.str()
	a.LineHeight = d.f32()
	a.FontSize = d.f32()
	a.Margin = d.f32()

	n := d.u64()
	if d.err != nil {
		return nil
	}
	a.Map = make(map[rune]CharacterInfo, min(n, 1024))
	for i := uint64(0); i < n; i++ {
		r := d.char()
		var c CharacterInfo
		c.InnerBoundingBox.X = d.f32()
		c.InnerBoundingBox.Y = d.f32()
		c.InnerBoundingBox.W = d.f32()
		c.InnerBoundingBox.H = d.f32()
		c.PreDrawAdvance = d.f32()
		c.PostDrawAdvance = d.f32()
		c.HeightOffset = d.f32()
		if d.err != nil {
			return nil
		}
		if _, dup := a.Map[r]; dup {
			d.fail(errDuplicateKey)
			return nil
		}
		a.Map[r] = c
	}
	return a
}
