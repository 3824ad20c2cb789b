package fontatlas

import (
	"errors"
	"fmt"
)

// ErrDecode is matched by every error returned from Decode and UnmarshalBinary.
var ErrDecode = errors.New("fontatlas: decode error")

var (
	errInvalidChar  = errors.New("invalid char")
	errInvalidUTF8  = errors.New("font name is not valid UTF-8")
	errDuplicateKey = errors.New("duplicate char")
	errTrailingData = errors.New("trailing data")
	errTooLong      = errors.New("length out of range")
)

// DecodeError reports where decoding an atlas failed.
type DecodeError struct {
	// Offset is the number of bytes consumed before the failure.
	Offset int64
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("fontatlas: decode error at byte %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports true for ErrDecode.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// FontLoadError is returned by Build when the font cannot be loaded.
type FontLoadError struct {
	Path string
	Err  error
}

func (e *FontLoadError) Error() string {
	return fmt.Sprintf("fontatlas: error loading font %s: %v", e.Path, e.Err)
}

func (e *FontLoadError) Unwrap() error { return e.Err }
