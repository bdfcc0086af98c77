package raster

import (
	"image"
	"image/color"

	"github.com/willbeason/newton-fractal/pkg/palette"
)

// Canvas is a row-major buffer of packed RGB pixels.
type Canvas struct {
	Width  int
	Height int
	Pix    []palette.Color
}

// NewCanvas returns a black canvas of the passed dimensions.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		Pix:    make([]palette.Color, width*height),
	}
}

// Offset is the index of pixel (x, y) in Pix.
func (c *Canvas) Offset(x, y int) int {
	return y*c.Width + x
}

func (c *Canvas) Set(x, y int, p palette.Color) {
	c.Pix[c.Offset(x, y)] = p
}

// Color returns the packed color of pixel (x, y).
func (c *Canvas) Color(x, y int) palette.Color {
	return c.Pix[c.Offset(x, y)]
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width, c.Height)
}

// At implements image.Image. Points outside the canvas are transparent.
func (c *Canvas) At(x, y int) color.Color {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return color.RGBA{}
	}

	r, g, b := c.Color(x, y).RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

var _ image.Image = (*Canvas)(nil)
