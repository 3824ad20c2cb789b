package fontatlas

import (
	"image"
	"image/png"
	"os"
)

// writePNG saves img as an 8-bit grayscale PNG.
func writePNG(path string, img *image.Gray) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}

	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
