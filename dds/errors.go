package dds

import "errors"

// Sentinel errors for dds package.
var (
	// ErrNotDDS is returned when the input does not start with a DDS header.
	ErrNotDDS = errors.New("dds: not a DDS file")

	// ErrUnsupportedFormat is returned for pixel formats, dimensions or
	// texture sizes this package does not read or write.
	ErrUnsupportedFormat = errors.New("dds: unsupported format")
)
