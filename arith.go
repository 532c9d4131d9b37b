package fpcomplex

import "math"

// Algebraic operations. The mutating receiver forms round into the
// receiver's precision (so z.Add(z, w) is the compound assignment); the
// package-level wrappers allocate the result at the wider operand
// precision.

// Add sets c = a + b.
func (c *Complex) Add(a, b *Complex) *Complex {
	return c.set2(a.re+b.re, a.im+b.im)
}

// Sub sets c = a - b.
func (c *Complex) Sub(a, b *Complex) *Complex {
	return c.set2(a.re-b.re, a.im-b.im)
}

// Mul sets c = a * b. Both products are formed in locals first, so the
// in-place forms c.Mul(c, b) and c.Mul(a, c) are safe.
func (c *Complex) Mul(a, b *Complex) *Complex {
	re := a.re*b.re - a.im*b.im
	im := a.im*b.re + a.re*b.im
	return c.set2(re, im)
}

// Div sets c = a / b using Smith's scaled algorithm: rescaling by the
// ratio of the divisor components keeps intermediate magnitudes near the
// operands and prevents spurious overflow/underflow. A zero divisor is
// not special-cased; the formulas produce Inf/NaN per IEEE.
func (c *Complex) Div(a, b *Complex) *Complex {
	if math.Abs(b.re) >= math.Abs(b.im) {
		ratio := b.im / b.re
		denom := b.re + b.im*ratio
		return c.set2((a.re+a.im*ratio)/denom, (a.im-a.re*ratio)/denom)
	}
	ratio := b.re / b.im
	denom := b.re*ratio + b.im
	return c.set2((a.re*ratio+a.im)/denom, (a.im*ratio-a.re)/denom)
}

// Neg sets c = -a.
func (c *Complex) Neg(a *Complex) *Complex { return c.set2(-a.re, -a.im) }

// Conj sets c to the complex conjugate of a.
func (c *Complex) Conj(a *Complex) *Complex { return c.set2(a.re, -a.im) }

// Inv sets c = 1 / a, via the scaled reciprocal.
func (c *Complex) Inv(a *Complex) *Complex {
	if math.Abs(a.re) >= math.Abs(a.im) {
		ratio := a.im / a.re
		denom := a.re + a.im*ratio
		return c.set2(1/denom, -ratio/denom)
	}
	ratio := a.re / a.im
	denom := a.re*ratio + a.im
	return c.set2(ratio/denom, -1/denom)
}

// Non-mutating wrappers.
func Add(a, b *Complex) *Complex { return New(widest(a.prec, b.prec)).Add(a, b) }
func Sub(a, b *Complex) *Complex { return New(widest(a.prec, b.prec)).Sub(a, b) }
func Mul(a, b *Complex) *Complex { return New(widest(a.prec, b.prec)).Mul(a, b) }
func Div(a, b *Complex) *Complex { return New(widest(a.prec, b.prec)).Div(a, b) }
func Neg(a *Complex) *Complex    { return New(a.prec).Neg(a) }
func Conj(a *Complex) *Complex   { return New(a.prec).Conj(a) }
func Inv(a *Complex) *Complex    { return New(a.prec).Inv(a) }

// Mixed complex/real forms. Methods cannot take type parameters, so these
// are package functions; the result precision follows mixedPrec (a
// floating scalar can widen, an integer one cannot).

// AddScalar returns a + x.
func AddScalar[T Scalar](a *Complex, x T) *Complex {
	return New(mixedPrec[T](a)).set2(a.re+float64(x), a.im)
}

// SubScalar returns a - x.
func SubScalar[T Scalar](a *Complex, x T) *Complex {
	return New(mixedPrec[T](a)).set2(a.re-float64(x), a.im)
}

// ScalarSub returns x - a.
func ScalarSub[T Scalar](x T, a *Complex) *Complex {
	return New(mixedPrec[T](a)).set2(float64(x)-a.re, -a.im)
}

// MulScalar returns a * x.
func MulScalar[T Scalar](a *Complex, x T) *Complex {
	f := float64(x)
	return New(mixedPrec[T](a)).set2(a.re*f, a.im*f)
}

// DivScalar returns a / x.
func DivScalar[T Scalar](a *Complex, x T) *Complex {
	f := float64(x)
	return New(mixedPrec[T](a)).set2(a.re/f, a.im/f)
}

// ScalarDiv returns x / b: the scaled reciprocal of b times x. Relative
// to Div the sign of the imaginary part flips, since the numerator has no
// imaginary component.
func ScalarDiv[T Scalar](x T, b *Complex) *Complex {
	f := float64(x)
	c := New(mixedPrec[T](b))
	if math.Abs(b.re) >= math.Abs(b.im) {
		ratio := b.im / b.re
		denom := b.re + b.im*ratio
		return c.set2(f/denom, -f*ratio/denom)
	}
	ratio := b.re / b.im
	denom := b.re*ratio + b.im
	return c.set2(f*ratio/denom, -f/denom)
}
