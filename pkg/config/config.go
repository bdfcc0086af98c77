// Package config describes a single render: the image geometry, the polynomial's roots and
// the colors of their basins.
package config

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"github.com/willbeason/newton-fractal/pkg/palette"
)

const (
	DefaultPixelsPerUnit = 100
	// DefaultUnitsWide and DefaultUnitsHigh size the image in units of the complex plane
	// when no explicit width or height is given.
	DefaultUnitsWide = 8
	DefaultUnitsHigh = 6
	DefaultMaxSteps  = 20
	DefaultOutput    = "img.ppm"
)

var (
	ErrInvalidDimensions = errors.New("invalid image dimensions")
	ErrNoRoots           = errors.New("no roots configured")
	ErrTooFewColors      = errors.New("fewer colors than roots")
	ErrRootOutOfView     = errors.New("root outside the visible window")
)

// Config is the full description of a run. It is built once at startup and then only
// read; pass it by value.
type Config struct {
	// PixelsPerUnit is the number of pixels per unit length of the complex plane.
	PixelsPerUnit int
	Width, Height int
	// MaxSteps caps the Newton iterations per pixel.
	MaxSteps int

	Roots   []complex128
	Palette []palette.Color

	// Output is the path of the image to write.
	Output string
	// Format overrides the encoding inferred from Output's extension.
	Format string
	// Workers is the number of rows rendered concurrently. 1 renders sequentially.
	Workers int
	// Report is the path of an optional JSON render report.
	Report string
}

// DefaultRoots are -1, ±i and the conjugate pair at ±30 degrees on the unit circle.
func DefaultRoots() []complex128 {
	w := cmplx.Rect(1, math.Pi/6)
	return []complex128{-1, w, cmplx.Conj(w), 1i, -1i}
}

// Default returns the built-in 800x600 five-root configuration.
func Default() Config {
	return Config{
		PixelsPerUnit: DefaultPixelsPerUnit,
		Width:         DefaultUnitsWide * DefaultPixelsPerUnit,
		Height:        DefaultUnitsHigh * DefaultPixelsPerUnit,
		MaxSteps:      DefaultMaxSteps,
		Roots:         DefaultRoots(),
		Palette:       slices.Clone(palette.Default),
		Output:        DefaultOutput,
		Workers:       1,
	}
}

// HalfExtent is how far the visible window reaches from the origin along each axis.
func (c Config) HalfExtent() (re, im float64) {
	ppu := float64(c.PixelsPerUnit)
	return float64(c.Width) / (2 * ppu), float64(c.Height) / (2 * ppu)
}

// Validate reports the first problem that would make c impossible to render.
func (c Config) Validate() error {
	switch {
	case c.PixelsPerUnit <= 0:
		return fmt.Errorf("%w: pixels per unit must be positive, got %d", ErrInvalidDimensions, c.PixelsPerUnit)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	case c.MaxSteps < 0:
		return fmt.Errorf("%w: max steps must not be negative, got %d", ErrInvalidDimensions, c.MaxSteps)
	case len(c.Roots) == 0:
		return ErrNoRoots
	case len(c.Palette) < len(c.Roots):
		return fmt.Errorf("%w: %d colors for %d roots", ErrTooFewColors, len(c.Palette), len(c.Roots))
	}

	maxRe, maxIm := c.HalfExtent()
	for i, r := range c.Roots {
		// Negated so that NaN components are rejected too.
		if !(math.Abs(real(r)) <= maxRe) || !(math.Abs(imag(r)) <= maxIm) {
			return fmt.Errorf("%w: root %d at %v, window is ±%g ±%gi", ErrRootOutOfView, i, r, maxRe, maxIm)
		}
	}

	return nil
}
