package fpcomplex

import "math"

// Power operations. All general paths go through the polar form
// principal-value power; small non-negative integer exponents take exact
// multiply fast paths.

// powPolar sets c = a^(re + i*im) in polar form:
//
//	ab = |a|^re * exp(-im*arg(a))
//	ar = arg(a)*re + log(|a|)*im
//
// The log of the modulus is only touched when the exponent has an
// imaginary component, so purely real exponents of a zero base stay on
// the math.Pow semantics instead of hitting log(0).
func (c *Complex) powPolar(a *Complex, re, im float64) *Complex {
	modulus := a.Abs()
	arg := a.Arg()
	ab := math.Pow(modulus, re)
	ar := arg * re
	if im != 0 {
		ab *= math.Exp(-im * arg)
		ar += im * math.Log(modulus)
	}
	s, co := math.Sincos(ar)
	return c.set2(ab*co, ab*s)
}

// Pow sets c = a^b for a complex exponent b.
func (c *Complex) Pow(a, b *Complex) *Complex { return c.powPolar(a, b.re, b.im) }

// Pow returns a^b at the wider operand precision.
func Pow(a, b *Complex) *Complex { return New(widest(a.prec, b.prec)).Pow(a, b) }

// PowInt returns a^n. Exponents 0 through 3 are exact multiply fast
// paths (0^0 is 1 by convention); anything else falls through to the
// polar-form power with the exponent cast to floating point.
func PowInt(a *Complex, n int) *Complex {
	c := New(a.prec)
	switch n {
	case 0:
		return c.set2(1, 0)
	case 1:
		return c.Set(a)
	case 2:
		return c.Mul(a, a)
	case 3:
		return c.Mul(a, a).Mul(c, a)
	}
	return c.powPolar(a, float64(n), 0)
}

// PowScalar returns a^r for a real exponent r: the canonical principal
// value |a|^r * (cos(r*arg a), sin(r*arg a)).
func PowScalar[T Scalar](a *Complex, r T) *Complex {
	return New(mixedPrec[T](a)).powPolar(a, float64(r), 0)
}

// ScalarPow returns b^w for a real base and complex exponent. Negative
// bases take principal argument π, placing the branch cut of the
// underlying logarithm along the negative real axis. A zero base flows
// log(0) = -Inf through IEEE arithmetic (NaN once w.im is nonzero).
func ScalarPow[T Scalar](b T, w *Complex) *Complex {
	c := New(mixedPrec[T](w))
	base := float64(b)
	var ab, ar float64
	if base >= 0 {
		ab = math.Pow(base, w.re)
		if w.im != 0 {
			ar = math.Log(base) * w.im
		}
	} else {
		ab = math.Pow(-base, w.re) * math.Exp(-math.Pi*w.im)
		ar = math.Pi*w.re + math.Log(-base)*w.im
	}
	s, co := math.Sincos(ar)
	return c.set2(ab*co, ab*s)
}
