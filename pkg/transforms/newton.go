// Package transforms holds the maps iterated over the complex plane.
package transforms

import (
	"math"

	"github.com/willbeason/newton-fractal/pkg/polynomial"
)

// Newton is a single step of Newton's method for finding a root of F.
type Newton struct {
	// F is the polynomial whose roots are sought.
	F polynomial.Polynomial
	// DF is the derivative of F.
	DF polynomial.Polynomial
}

// Step returns z - F(z)/F'(z).
//
// ok is false if the iteration stalled: either the derivative is exactly zero at z or z is
// already NaN. In that case z is returned unchanged.
func (n Newton) Step(z complex128) (next complex128, ok bool) {
	y, dy := n.F.Evaluate(z), n.DF.Evaluate(z)
	if dy == 0 || IsNaN(z) {
		return z, false
	}

	return z - y/dy, true
}

// IsNaN reports whether either part of z is NaN.
//
// Unlike cmplx.IsNaN, a point with one infinite part and one NaN part is still NaN.
func IsNaN(z complex128) bool {
	return math.IsNaN(real(z)) || math.IsNaN(imag(z))
}
