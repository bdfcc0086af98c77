// Package ppm writes images in the binary portable pixmap format (P6).
package ppm

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/willbeason/newton-fractal/pkg/raster"
)

// MaxValue is the largest channel value written to the header.
const MaxValue = 255

// Encode writes m to w as a binary PPM: the header "P6\n<width> <height>\n255\n"
// followed by three bytes per pixel (red, green, blue), row by row from the top.
//
// Any write error aborts encoding and is returned as-is.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()

	_, err := fmt.Fprintf(w, "P6\n%d %d\n%d\n", b.Dx(), b.Dy(), MaxValue)
	if err != nil {
		return err
	}

	row := make([]byte, 3*b.Dx())

	if c, ok := m.(*raster.Canvas); ok {
		for y := 0; y < c.Height; y++ {
			for x := 0; x < c.Width; x++ {
				row[3*x], row[3*x+1], row[3*x+2] = c.Color(x, y).RGB()
			}
			if _, err = w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(m.At(x, y)).(color.RGBA)
			i := 3 * (x - b.Min.X)
			row[i], row[i+1], row[i+2] = c.R, c.G, c.B
		}
		if _, err = w.Write(row); err != nil {
			return err
		}
	}

	return nil
}
