package fpcomplex

import "math"

// Abs returns the modulus |c|, overflow-safe via math.Hypot.
func (c *Complex) Abs() float64 { return math.Hypot(c.re, c.im) }

// SqAbs returns re² + im². Unlike Abs it is not rescaled, so it may
// overflow for magnitudes above about sqrt(MaxFloat64).
func (c *Complex) SqAbs() float64 { return c.re*c.re + c.im*c.im }

// SqAbsScalar is the real overload of SqAbs, so generic code can take the
// squared magnitude of real and complex operands uniformly.
func SqAbsScalar[T Scalar](x T) float64 {
	f := float64(x)
	return f * f
}

// Arg returns the argument (phase) of c in (-π, π].
func (c *Complex) Arg() float64 { return math.Atan2(c.im, c.re) }

// FromPolar builds the complex number with the given modulus and
// argument. The result precision is the wider of the two scalar
// arguments' precisions.
func FromPolar[T, R Scalar](modulus T, argument R) *Complex {
	c := New(widest(constructPrec[T](), constructPrec[R]()))
	s, co := math.Sincos(float64(argument))
	m := float64(modulus)
	return c.set2(m*co, m*s)
}
