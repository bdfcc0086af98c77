package basin

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/willbeason/newton-fractal/pkg/polynomial"
)

var unityRoots = []complex128{1, -1, 1i, -1i}

func defaultRoots() []complex128 {
	w := cmplx.Rect(1, math.Pi/6)
	return []complex128{-1, w, cmplx.Conj(w), 1i, -1i}
}

func TestClassify_StartOnRoot(t *testing.T) {
	p := polynomial.FromRoots(unityRoots)
	dp := p.Derivative()

	for want, r := range unityRoots {
		// A single step is enough: p(r) is exactly zero so the step lands on r.
		if got := Classify(p, dp, unityRoots, r, 1); got != want {
			t.Errorf("Classify(%v) = %d, want %d", r, got, want)
		}
	}
}

func TestClassify_Converges(t *testing.T) {
	c := NewClassifier(unityRoots, 20)

	tests := []struct {
		z    complex128
		want int
	}{
		{z: 0.9 + 0.05i, want: 0},
		{z: -1.2 - 0.1i, want: 1},
		{z: 0.1 + 1.3i, want: 2},
		{z: -0.05 - 0.8i, want: 3},
	}

	for _, tt := range tests {
		if got := c.Classify(tt.z); got != tt.want {
			t.Errorf("Classify(%v) = %d, want %d", tt.z, got, tt.want)
		}
	}
}

func TestClassify_Totality(t *testing.T) {
	roots := defaultRoots()
	c := NewClassifier(roots, 20)

	starts := []complex128{
		0,
		1e300 + 1e300i,
		-1e-300,
		complex(math.NaN(), 0),
		complex(math.Inf(-1), 2),
		0.5 - 3i,
	}

	for _, z := range starts {
		got := c.Classify(z)
		if got < 0 || got >= len(roots) {
			t.Errorf("Classify(%v) = %d, want index in [0, %d)", z, got, len(roots))
		}
	}
}

func TestClassify_TieGoesToFirstRoot(t *testing.T) {
	roots := []complex128{1, -1}
	p := polynomial.FromRoots(roots)
	dp := p.Derivative()

	// Without any steps, the start point itself is classified by distance.
	if got := Classify(p, dp, roots, 1e6i, 0); got != 0 {
		t.Errorf("Classify(1e6i, maxSteps=0) = %d, want 0", got)
	}

	// Newton's map for z^2 - 1 keeps points of the imaginary axis on it, so every iterate
	// stays equidistant from both roots and never lands on either.
	for _, y := range []float64{1e6, 3, 0.5, -42} {
		z := complex(0, y)
		if got := Classify(p, dp, roots, z, 20); got != 0 {
			t.Errorf("Classify(%v, maxSteps=20) = %d, want 0", z, got)
		}
	}

	// The derivative 2z vanishes at the origin, so the iteration stalls immediately.
	if got := Classify(p, dp, roots, 0, 20); got != 0 {
		t.Errorf("Classify(0) = %d, want 0", got)
	}
}

func TestClassify_MaxStepsZeroUsesNearest(t *testing.T) {
	roots := defaultRoots()
	c := NewClassifier(roots, 0)

	z := 0.1 + 0.9i
	if got, want := c.Classify(z), Nearest(roots, z); got != want {
		t.Errorf("Classify(%v) = %d, want %d", z, got, want)
	}
}

func TestNearest(t *testing.T) {
	tests := []struct {
		name  string
		roots []complex128
		z     complex128
		want  int
	}{
		{name: "closest", roots: []complex128{0, 10, 20}, z: 11, want: 1},
		{name: "tie", roots: []complex128{1, -1, 1i, -1i}, z: 0, want: 0},
		{name: "later tie", roots: []complex128{5, 1i, -1i}, z: 0, want: 1},
		{name: "nan", roots: []complex128{1, -1}, z: complex(math.NaN(), math.NaN()), want: 0},
		{name: "single", roots: []complex128{3 + 3i}, z: -100, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Nearest(tt.roots, tt.z); got != tt.want {
				t.Errorf("Nearest(%v) = %d, want %d", tt.z, got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(0, 3+4i); got != 5 {
		t.Errorf("Distance(0, 3+4i) = %v, want 5", got)
	}
	if got := Distance(1+1i, 1+1i); got != 0 {
		t.Errorf("Distance(z, z) = %v, want 0", got)
	}
}
