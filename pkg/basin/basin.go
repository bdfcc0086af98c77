// Package basin decides which basin of attraction a point of the complex plane falls in
// under Newton's method.
package basin

import (
	"math"
	"slices"

	"github.com/willbeason/newton-fractal/pkg/polynomial"
	"github.com/willbeason/newton-fractal/pkg/transforms"
)

// Classify returns the index of the root that z belongs to.
//
// Runs at most maxSteps Newton steps. If a step lands exactly on one of roots, that root's
// index is returned immediately. The comparison is exact floating-point equality, so this
// only fires for configurations where Newton's method reaches a representable root value.
// Otherwise, including when the iteration stalls on a zero derivative or a NaN, the nearest
// root to the last iterate wins.
//
// roots must not be empty.
func Classify(p, dp polynomial.Polynomial, roots []complex128, z complex128, maxSteps int) int {
	newton := transforms.Newton{F: p, DF: dp}

	for range maxSteps {
		next, ok := newton.Step(z)
		if !ok {
			break
		}

		if i := slices.Index(roots, next); i >= 0 {
			return i
		}

		z = next
	}

	return Nearest(roots, z)
}

// Nearest returns the index of the root closest to z.
//
// Ties go to the earliest root. If every distance is NaN the first root is returned.
func Nearest(roots []complex128, z complex128) int {
	index := 0
	minDistance := Distance(z, roots[0])

	for i := 1; i < len(roots); i++ {
		d := Distance(z, roots[i])
		if d < minDistance {
			minDistance = d
			index = i
		}
	}

	return index
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b complex128) float64 {
	d := b - a
	return math.Sqrt(real(d)*real(d) + imag(d)*imag(d))
}

// A Classifier bundles everything Classify needs for a fixed polynomial.
type Classifier struct {
	Polynomial polynomial.Polynomial
	Derivative polynomial.Polynomial
	Roots      []complex128
	MaxSteps   int
}

// NewClassifier builds the polynomial with the passed roots and its derivative.
func NewClassifier(roots []complex128, maxSteps int) Classifier {
	p := polynomial.FromRoots(roots)

	return Classifier{
		Polynomial: p,
		Derivative: p.Derivative(),
		Roots:      roots,
		MaxSteps:   maxSteps,
	}
}

func (c Classifier) Classify(z complex128) int {
	return Classify(c.Polynomial, c.Derivative, c.Roots, z, c.MaxSteps)
}
