package glyphs

import (
	"errors"
	"fmt"
)

// Sentinel errors for glyphs package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("glyphs: empty font data")

	// ErrUnknownParser is returned when no parser is registered under the requested name.
	ErrUnknownParser = errors.New("glyphs: unknown font parser")
)

// AtlasTooLargeError is returned when the glyphs do not fit in the largest
// allowed bitmap.
type AtlasTooLargeError struct {
	MaxSize int
	Glyphs  int
}

func (e *AtlasTooLargeError) Error() string {
	return fmt.Sprintf("glyphs: %d glyphs do not fit in a %dx%d bitmap", e.Glyphs, e.MaxSize, e.MaxSize)
}
