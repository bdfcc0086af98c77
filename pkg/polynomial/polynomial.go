package polynomial

import (
	"fmt"
	"strings"
)

// A Polynomial over the complex numbers.
//
// Coefficients are stored by ascending power: p[k] multiplies z^k. The degree is len(p)-1.
type Polynomial []complex128

// FromRoots returns the monic polynomial with exactly the passed roots.
//
// Starts from the constant 1 and multiplies in (z - root) for each root in order.
// An empty list yields the constant polynomial 1.
func FromRoots(roots []complex128) Polynomial {
	p := Polynomial{1}
	for _, r := range roots {
		p = Multiply(p, Polynomial{-r, 1})
	}

	return p
}

// Multiply returns the product of a and b without modifying either.
func Multiply(a, b Polynomial) Polynomial {
	if len(a) == 0 || len(b) == 0 {
		return Polynomial{}
	}

	result := make(Polynomial, len(a)+len(b)-1)
	for i, ca := range a {
		for j, cb := range b {
			result[i+j] += ca * cb
		}
	}

	return result
}

// Degree is the highest power of z in p, or -1 for the empty polynomial.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// Derivative returns dp/dz.
//
// The derivative of a constant is the empty polynomial.
func (p Polynomial) Derivative() Polynomial {
	if len(p) <= 1 {
		return Polynomial{}
	}

	result := make(Polynomial, len(p)-1)
	for i := range result {
		result[i] = complex(float64(i+1), 0) * p[i+1]
	}

	return result
}

// Evaluate returns p(z).
//
// Each term is computed with an exact integer power rather than Horner's scheme.
func (p Polynomial) Evaluate(z complex128) complex128 {
	var result complex128
	for i, c := range p {
		result += c * Pow(z, uint(i))
	}

	return result
}

// Pow returns z^n by repeated squaring.
func Pow(z complex128, n uint) complex128 {
	if n == 0 {
		return 1
	}

	for n&1 == 0 {
		z *= z
		n >>= 1
	}
	if n == 1 {
		return z
	}

	acc := z
	for n > 1 {
		n >>= 1
		z *= z
		if n&1 == 1 {
			acc *= z
		}
	}

	return acc
}

// String lists the terms from the highest power down, e.g. "1: (1+0i) 0: (-2+0i) ".
func (p Polynomial) String() string {
	sb := strings.Builder{}
	for i := len(p) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%d: %v ", i, p[i])
	}

	return sb.String()
}
