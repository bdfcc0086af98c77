// Package output picks an image encoder and writes rendered frames to disk.
package output

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/willbeason/newton-fractal/pkg/ppm"
)

// Format is an output image encoding.
type Format string

const (
	PPM  Format = "ppm"
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

var ErrUnknownFormat = errors.New("unknown image format")

// Formats lists every supported Format.
var Formats = []Format{PPM, PNG, BMP, TIFF}

// ParseFormat returns the Format named by s, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "ppm":
		return PPM, nil
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}

	return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

// FormatFromPath infers the Format from path's extension, falling back to PPM.
func FormatFromPath(path string) Format {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return PPM
	}

	return f
}

// Encode writes m to w in format f.
func Encode(w io.Writer, m image.Image, f Format) error {
	switch f {
	case PPM:
		return ppm.Encode(w, m)
	case PNG:
		return png.Encode(w, m)
	case BMP:
		return bmp.Encode(w, m)
	case TIFF:
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	}

	return fmt.Errorf("%w %q", ErrUnknownFormat, string(f))
}

// WriteFile encodes m into a new file at path. An existing file is truncated.
// A failed write may leave a partial file behind.
func WriteFile(path string, m image.Image, f Format) error {
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	bw := bufio.NewWriter(file)
	err = Encode(bw, m, f)
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}
