package fpcomplex

import "math"

// Expi returns cos(y) + i*sin(y), the point on the unit circle at angle y.
func Expi[T Scalar](y T) *Complex {
	s, co := math.Sincos(float64(y))
	return New(constructPrec[T]()).set2(co, s)
}

// Sqrt sets c to the principal square root of a. The intermediate w is
// computed from the larger-magnitude component, so the routine neither
// overflows for large inputs nor loses accuracy for skewed ones, and the
// real part of the result is always >= 0.
func (c *Complex) Sqrt(a *Complex) *Complex {
	if a.re == 0 && a.im == 0 {
		return c.set2(0, 0)
	}
	x, y := math.Abs(a.re), math.Abs(a.im)
	var w float64
	if x >= y {
		r := y / x
		w = math.Sqrt(x) * math.Sqrt(0.5*(1+math.Sqrt(1+r*r)))
	} else {
		r := x / y
		w = math.Sqrt(y) * math.Sqrt(0.5*(r+math.Sqrt(1+r*r)))
	}
	if a.re >= 0 {
		return c.set2(w, a.im/(2*w))
	}
	if a.im < 0 {
		w = -w
	}
	return c.set2(a.im/(2*w), w)
}

// Sin sets c = sin(a), splitting the angle into circular and hyperbolic
// factors: sin(x+iy) = sin(x)cosh(y) + i cos(x)sinh(y). For real a this
// reduces exactly to math.Sin.
func (c *Complex) Sin(a *Complex) *Complex {
	s, co := math.Sincos(a.re)
	return c.set2(s*math.Cosh(a.im), co*math.Sinh(a.im))
}

// Cos sets c = cos(a): cos(x+iy) = cos(x)cosh(y) - i sin(x)sinh(y).
func (c *Complex) Cos(a *Complex) *Complex {
	s, co := math.Sincos(a.re)
	return c.set2(co*math.Cosh(a.im), -s*math.Sinh(a.im))
}

// Non-mutating wrappers.
func Sqrt(a *Complex) *Complex { return New(a.prec).Sqrt(a) }
func Sin(a *Complex) *Complex  { return New(a.prec).Sin(a) }
func Cos(a *Complex) *Complex  { return New(a.prec).Cos(a) }
