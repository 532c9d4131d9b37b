package fpcomplex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// relErr returns the component-wise relative error of got against want.
func relErr(got, want *Complex) float64 {
	scale := want.Abs()
	if scale == 0 {
		return got.Abs()
	}
	return Sub(got, want).Abs() / scale
}

func TestCommutativity(t *testing.T) {
	pairs := [][2]*Complex{
		{tp("1.5+0.75i"), tp("-2.25+0.5i")},
		{tp("1e300+1e-300i"), tp("-3.5+2i")},
		{tp("0.1+0.2i"), tp("0.3-0.4i")},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		require.True(t, Add(a, b).Equal(Add(b, a)), "a+b != b+a for %s, %s", a, b)
		require.True(t, Mul(a, b).Equal(Mul(b, a)), "a*b != b*a for %s, %s", a, b)
	}
}

func TestAddSubMulDivExact(t *testing.T) {
	a := tp("1.5+0.75i")
	b := tp("-2.25+0.5i")

	require.True(t, Add(a, b).Equal(tp("-0.75+1.25i")), "Add: got %s", Add(a, b))
	require.True(t, Sub(a, b).Equal(tp("3.75+0.25i")), "Sub: got %s", Sub(a, b))
	require.True(t, Mul(a, b).Equal(tp("-3.75-0.9375i")), "Mul: got %s", Mul(a, b))

	// Division check via inverse: a/b ~= a*inv(b)
	require.Less(t, relErr(Div(a, b), Mul(a, Inv(b))), 1e-15)
}

func TestCompoundAssignment(t *testing.T) {
	z := tp("1.5+0.75i")
	w := tp("-2.25+0.5i")
	z.Add(z, w) // z += w
	require.True(t, z.Equal(tp("-0.75+1.25i")))

	// In-place multiply must not read a half-updated receiver.
	z = tp("1.5+0.75i")
	z.Mul(z, z)
	require.True(t, z.Equal(Mul(tp("1.5+0.75i"), tp("1.5+0.75i"))))
}

func TestDivMulRoundTrip(t *testing.T) {
	vals := []*Complex{
		tp("1.5+0.75i"),
		tp("-2.25+0.5i"),
		tp("3.1415926535+2.718281828i"),
		tp("-0.001+1000i"),
	}
	for _, a := range vals {
		for _, b := range vals {
			got := Mul(Div(a, b), b)
			require.Less(t, relErr(got, a), 1e-14, "(%s / %s) * %s = %s", a, b, b, got)
		}
	}
}

// Smith's scaling must survive divisor components near the overflow and
// underflow thresholds, where the textbook formula's re^2+im^2 blows up.
func TestDivScaledExtremes(t *testing.T) {
	a := Rect(1e300, 1e300)
	b := Rect(1e300, 1e-300)
	q := Div(a, b)
	require.False(t, q.IsInf(), "overflow in scaled division: %s", q)
	require.False(t, q.IsNaN(), "NaN in scaled division: %s", q)
	require.Less(t, relErr(Mul(q, b), a), 1e-13)

	tiny := Rect(4e-308, 2e-308)
	q = Div(tiny, tiny)
	require.Less(t, relErr(q, FromScalar(1.0)), 1e-13)
}

func TestDivByZero(t *testing.T) {
	q := Div(tp("1+1i"), tp("0"))
	require.True(t, q.IsNaN() || q.IsInf(), "z/0 = %s, want Inf/NaN per IEEE", q)
}

func TestInv(t *testing.T) {
	for _, s := range []string{"3.25-1.75i", "1e200+1e-200i", "-0.5+0.25i"} {
		z := tp(s)
		require.Less(t, relErr(Mul(z, Inv(z)), FromScalar(1.0)), 1e-14, "z*inv(z) for %s", s)
	}
}

func TestNegConj(t *testing.T) {
	z := tp("3.25-1.75i")
	require.True(t, Add(z, Neg(z)).Equal(tp("0")), "z + (-z) != 0")
	require.True(t, Conj(Conj(z)).Equal(z), "conj(conj(z)) != z")
	require.Equal(t, -z.Imag(), Conj(z).Imag())
}

func TestScalarOps(t *testing.T) {
	z := tp("1.5+0.75i")

	require.True(t, AddScalar(z, 2).Equal(tp("3.5+0.75i")))
	require.True(t, SubScalar(z, 2).Equal(tp("-0.5+0.75i")))
	require.True(t, ScalarSub(2, z).Equal(tp("0.5-0.75i")))
	require.True(t, MulScalar(z, 2).Equal(tp("3+1.5i")))
	require.True(t, DivScalar(z, 2).Equal(tp("0.75+0.375i")))

	// Reflected division agrees with promoting the scalar.
	got := ScalarDiv(2, z)
	want := Div(FromScalar(2.0), z)
	require.Less(t, relErr(got, want), 1e-15)
	// The scaled reciprocal must survive extreme divisors too.
	ext := ScalarDiv(1, Rect(1e300, 1e300))
	require.False(t, ext.IsNaN() || ext.IsInf(), "1/huge = %s", ext)
}

func TestSqAbs(t *testing.T) {
	z := tp("3+4i")
	require.Equal(t, 25.0, z.SqAbs())
	require.Equal(t, 5.0, z.Abs())
	require.Equal(t, 6.25, SqAbsScalar(2.5))
	require.Equal(t, 9.0, SqAbsScalar(3))
	// Abs is rescaled, SqAbs deliberately is not.
	huge := Rect(1e200, 1e200)
	require.False(t, math.IsInf(huge.Abs(), 0))
	require.True(t, math.IsInf(huge.SqAbs(), 1))
}

func TestArgRange(t *testing.T) {
	require.Equal(t, 0.0, tp("1").Arg())
	require.Equal(t, math.Pi, tp("-1").Arg())
	require.Equal(t, math.Pi/2, tp("i").Arg())
	require.Equal(t, -math.Pi/2, tp("-i").Arg())
}

func TestFromPolarRoundTrip(t *testing.T) {
	vals := []*Complex{
		tp("1.5+0.75i"),
		tp("-2.25+0.5i"),
		tp("-0.5-0.25i"),
		tp("3.1415926535+2.718281828i"),
	}
	for _, z := range vals {
		back := FromPolar(z.Abs(), z.Arg())
		require.Less(t, relErr(back, z), 1e-14, "fromPolar(abs, arg) for %s", z)
	}
	// Result precision widens over both scalar arguments.
	require.Equal(t, Single, FromPolar(float32(2), float32(0.5)).Prec())
	require.Equal(t, Double, FromPolar(float32(2), 0.5).Prec())
	require.Equal(t, Double, FromPolar(2, 1).Prec())
}
