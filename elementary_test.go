package fpcomplex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSqrtExactPoints(t *testing.T) {
	require.True(t, Sqrt(tp("0")).Equal(tp("0")), "sqrt(0)")
	require.True(t, Sqrt(tp("4")).Equal(tp("2")), "sqrt(4)")
	require.True(t, Sqrt(tp("-4")).Equal(tp("2i")), "sqrt(-4)")
	require.True(t, Sqrt(tp("-3+4i")).Equal(tp("1+2i")), "sqrt(-3+4i)")
	require.True(t, Sqrt(tp("-3-4i")).Equal(tp("1-2i")), "sqrt(-3-4i)")
}

func TestSqrtPrincipalBranch(t *testing.T) {
	vals := []string{
		"1.5+0.75i", "-1.5+0.75i", "-1.5-0.75i", "1.5-0.75i",
		"-2.25", "0.0625i", "-0.0625i", "3.1415926535+2.718281828i",
	}
	for _, s := range vals {
		z := tp(s)
		r := Sqrt(z)
		require.GreaterOrEqual(t, r.Real(), 0.0, "sqrt(%s).re", s)
		require.Less(t, relErr(Mul(r, r), z), 1e-14, "sqrt(%s)^2", s)
	}
}

// The intermediate is formed from the larger component, so magnitudes
// near MaxFloat64 must not overflow.
func TestSqrtHuge(t *testing.T) {
	z := Rect(1e308, 1e308)
	r := Sqrt(z)
	require.False(t, r.IsInf(), "sqrt overflowed: %s", r)
	sq := Mul(r, r)
	require.InEpsilon(t, z.Real(), sq.Real(), 1e-12)
	require.InEpsilon(t, z.Imag(), sq.Imag(), 1e-12)

	w := Rect(-1e308, 1e-308)
	require.False(t, Sqrt(w).IsInf())
	require.GreaterOrEqual(t, Sqrt(w).Real(), 0.0)
}

func TestSinCosRealAxis(t *testing.T) {
	// With a zero imaginary part the decomposition collapses to the real
	// routines: cosh(0) = 1, sinh(0) = 0.
	for _, x := range []float64{0, 0.5, -1.25, 3.0} {
		z := Rect(x, 0.0)
		require.True(t, EqScalar(Sin(z), math.Sin(x)), "sin(%v)", x)
		require.True(t, EqScalar(Cos(z), math.Cos(x)), "cos(%v)", x)
	}
}

func TestSinCosPythagorean(t *testing.T) {
	for _, s := range []string{"0.5+0.3i", "-1.25+0.75i", "2-1i", "0.1-0.2i"} {
		z := tp(s)
		sin2 := PowInt(Sin(z), 2)
		cos2 := PowInt(Cos(z), 2)
		require.Less(t, relErr(Add(sin2, cos2), tp("1")), 1e-12,
			"sin^2+cos^2 for %s", s)
	}
}

func TestSinCosHyperbolicParts(t *testing.T) {
	z := tp("0.5+0.3i")
	require.InDelta(t, math.Sin(0.5)*math.Cosh(0.3), Sin(z).Real(), 1e-15)
	require.InDelta(t, math.Cos(0.5)*math.Sinh(0.3), Sin(z).Imag(), 1e-15)
	require.InDelta(t, math.Cos(0.5)*math.Cosh(0.3), Cos(z).Real(), 1e-15)
	require.InDelta(t, -math.Sin(0.5)*math.Sinh(0.3), Cos(z).Imag(), 1e-15)
}

func TestExpi(t *testing.T) {
	require.True(t, Expi(0.0).Equal(tp("1")), "expi(0)")

	y := 2.0 * math.Pi / 3.0
	e := Expi(y)
	require.InDelta(t, math.Cos(y), e.Real(), 1e-15)
	require.InDelta(t, math.Sin(y), e.Imag(), 1e-15)
	require.InDelta(t, 1, e.Abs(), 1e-15)

	require.Equal(t, Single, Expi(float32(0.5)).Prec())
	require.Equal(t, Double, Expi(1).Prec())

	// expi is the unit-circle factor of fromPolar.
	require.Less(t, relErr(MulScalar(Expi(y), 2.5), FromPolar(2.5, y)), 1e-15)
}
