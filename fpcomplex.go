// Package fpcomplex provides native-precision complex arithmetic for Go.
//
// It is the fixed-precision sibling of apcomplex: the same API shape
// (mutating chainable methods plus non-mutating package-level wrappers),
// but backed by hardware IEEE 754 arithmetic instead of GNU MPC/MPFR, so
// it needs no cgo and allocates nothing beyond the values themselves.
//
// A Complex carries a precision tag (Single, Double or Extended). Results
// of binary operations take the wider precision of the two operands.
// Single-precision results are computed in binary64 and rounded once
// through float32; for + - * / that single rounding step yields the
// correctly rounded binary32 result.
//
// Minimal usage:
//
//	z := fpcomplex.MustParse("1.5+0.75i", fpcomplex.Double)
//	w := fpcomplex.Sqrt(z)
//	fmt.Printf("%.6g\n", w)
//
// SPDX-License-Identifier: MIT
package fpcomplex

import (
	"math"
	"unsafe"
)

// Float is the set of native IEEE floating-point types.
type Float interface {
	~float32 | ~float64
}

// Scalar is any real numeric type usable as the real-valued operand of a
// mixed complex/real operation.
type Scalar interface {
	Float | ~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Prec is a floating-point precision, expressed as mantissa bits like
// apcomplex's bit counts. Only the three named constants are meaningful.
type Prec uint

const (
	// Single is IEEE binary32 precision.
	Single Prec = 24
	// Double is IEEE binary64 precision.
	Double Prec = 53
	// Extended is the 64-bit-mantissa extended format. Go has no native
	// 80-bit type, so Extended values round like Double but rank above it
	// in the widening order (the long double == double convention).
	Extended Prec = 64
)

// String returns the conventional name of the precision.
func (p Prec) String() string {
	switch p {
	case Single:
		return "single"
	case Double:
		return "double"
	case Extended:
		return "extended"
	}
	return "double"
}

// round rounds x to p. Only Single actually narrows; the single rounding
// through float32 is exact for results of the four basic operations.
func (p Prec) round(x float64) float64 {
	if p == Single {
		return float64(float32(x))
	}
	return x
}

// widest returns the wider of two precisions.
func widest(a, b Prec) Prec {
	if a > b {
		return a
	}
	return b
}

// scalarPrec reports the natural precision of T and whether T is a
// floating-point kind. Integer kinds divide 1/2 down to zero.
func scalarPrec[T Scalar]() (Prec, bool) {
	var x T
	if T(1)/T(2) == T(0) {
		return Double, false
	}
	if unsafe.Sizeof(x) == 4 {
		return Single, true
	}
	return Double, true
}

// constructPrec resolves the precision of a value built from a bare T:
// floating scalars keep their own precision, everything else defaults to
// Double.
func constructPrec[T Scalar]() Prec {
	p, _ := scalarPrec[T]()
	return p
}

// mixedPrec resolves the result precision of z combined with a T scalar:
// a floating scalar can widen the result, an integer one never does.
func mixedPrec[T Scalar](z *Complex) Prec {
	if p, ok := scalarPrec[T](); ok {
		return widest(z.prec, p)
	}
	return z.prec
}

// Complex is a complex number of a fixed native precision. Use New, Rect,
// FromScalar or Parse; the zero value is not usable.
type Complex struct {
	re, im float64
	prec   Prec
}

// New allocates a zero value with the given precision. If p is 0, Double
// is used.
func New(p Prec) *Complex {
	if p == 0 {
		p = Double
	}
	return &Complex{prec: p}
}

// Rect builds re + i*im from two scalars of the same type. The precision
// is the scalars' own for floating kinds and Double for integer kinds.
func Rect[T Scalar](re, im T) *Complex {
	c := New(constructPrec[T]())
	return c.set2(float64(re), float64(im))
}

// FromScalar builds x + 0i, with the precision resolved as in Rect.
func FromScalar[T Scalar](x T) *Complex {
	c := New(constructPrec[T]())
	return c.set2(float64(x), 0)
}

// Prec returns the value's precision.
func (c *Complex) Prec() Prec { return c.prec }

// Real returns the real part.
func (c *Complex) Real() float64 { return c.re }

// Imag returns the imaginary part.
func (c *Complex) Imag() float64 { return c.im }

// Clone returns a copy.
func (c *Complex) Clone() *Complex {
	out := *c
	return &out
}

// SetPrec changes the precision, rounding the value to the new one.
func (c *Complex) SetPrec(p Prec) *Complex {
	if p == 0 {
		p = Double
	}
	c.prec = p
	return c.set2(c.re, c.im)
}

// Set assigns a to c, rounding to c's precision. Assigning across
// precisions is the field-wise conversion; it may lose precision and
// never fails.
func (c *Complex) Set(a *Complex) *Complex { return c.set2(a.re, a.im) }

// SetFloat assigns the real scalar x, clearing the imaginary part.
func (c *Complex) SetFloat(x float64) *Complex { return c.set2(x, 0) }

// set2 stores both fields rounded to the receiver precision. All
// operations land here, so an in-place call never observes a
// half-updated receiver.
func (c *Complex) set2(re, im float64) *Complex {
	c.re, c.im = c.prec.round(re), c.prec.round(im)
	return c
}

// Equal reports field-wise exact equality. NaN fields compare unequal,
// per IEEE. Callers wanting approximate equality must bring their own
// epsilon.
func (c *Complex) Equal(b *Complex) bool {
	return c.re == b.re && c.im == b.im
}

// Eq is the package-level form of Equal.
func Eq(a, b *Complex) bool { return a.Equal(b) }

// EqScalar reports whether a equals the real scalar x exactly, i.e. the
// imaginary part is zero and the real part equals x.
func EqScalar[T Scalar](a *Complex, x T) bool {
	return a.im == 0 && a.re == float64(x)
}

// IsNaN reports whether either part is NaN.
func (c *Complex) IsNaN() bool {
	return math.IsNaN(c.re) || math.IsNaN(c.im)
}

// IsInf reports whether either part is an infinity.
func (c *Complex) IsInf() bool {
	return math.IsInf(c.re, 0) || math.IsInf(c.im, 0)
}
