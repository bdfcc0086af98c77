// Package palette holds packed 24-bit RGB colors.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a packed 0xRRGGBB value.
type Color uint32

// Default colors one basin each of the default five-root polynomial.
var Default = []Color{
	0x4a0b58,
	0x39538e,
	0x1fa0cf,
	0x56b861,
	0x19858f,
}

var ErrInvalidColor = errors.New("invalid color")

// RGB splits c into its red, green and blue bytes.
func (c Color) RGB() (r, g, b uint8) {
	return uint8((c >> 16) & 0xff), uint8((c >> 8) & 0xff), uint8(c & 0xff)
}

// RGBA implements color.Color as a fully opaque color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}.RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// Parse reads a hex color such as "#4a0b58", "0x4a0b58" or "4a0b58".
func Parse(s string) (Color, error) {
	hex := strings.TrimSpace(s)
	hex = strings.TrimPrefix(hex, "#")
	hex = strings.TrimPrefix(strings.TrimPrefix(hex, "0x"), "0X")

	if len(hex) != 6 {
		return 0, fmt.Errorf("%w %q: want six hex digits", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}

	return Color(v), nil
}

// ParseAll parses every entry of ss, stopping at the first invalid one.
func ParseAll(ss []string) ([]Color, error) {
	result := make([]Color, len(ss))
	for i, s := range ss {
		c, err := Parse(s)
		if err != nil {
			return nil, err
		}
		result[i] = c
	}

	return result, nil
}
