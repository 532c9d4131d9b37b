package fpcomplex

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses a complex literal at the given precision. Accepts:
//
//	"a+bi", "a-bi", "i", "-i", plain real "a", or the pair form "(a b)" / "(a, b)".
func Parse(s string, p Prec) (*Complex, error) {
	z := New(p)
	if err := z.SetString(s); err != nil {
		return nil, err
	}
	return z, nil
}

// MustParse panics on error.
func MustParse(s string, p Prec) *Complex {
	z, err := Parse(s, p)
	if err != nil {
		panic(err)
	}
	return z
}

// SetString sets c from a complex string (see Parse), rounding to c's
// precision.
func (c *Complex) SetString(s string) error {
	re, im, ok := normalizeToPair(s)
	if !ok {
		return fmt.Errorf("fpcomplex: invalid complex literal %q", s)
	}
	rv, err := strconv.ParseFloat(re, 64)
	if err != nil {
		return fmt.Errorf("fpcomplex: invalid real part %q", re)
	}
	iv, err := strconv.ParseFloat(im, 64)
	if err != nil {
		return fmt.Errorf("fpcomplex: invalid imaginary part %q", im)
	}
	c.set2(rv, iv)
	return nil
}

// normalizeToPair converts common forms into separate real/imag strings.
func normalizeToPair(in string) (string, string, bool) {
	s := strings.TrimSpace(in)
	if s == "" {
		return "0", "0", true
	}
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		mid := strings.TrimSpace(s[1 : len(s)-1])
		mid = strings.ReplaceAll(mid, ",", " ")
		f := strings.Fields(mid)
		if len(f) == 1 {
			return f[0], "0", true
		}
		if len(f) >= 2 {
			return f[0], f[1], true
		}
		return "", "", false
	}
	s = strings.ReplaceAll(s, "I", "i")
	if s == "i" || s == "+i" {
		return "0", "1", true
	}
	if s == "-i" {
		return "0", "-1", true
	}
	if strings.HasSuffix(s, "i") {
		core := strings.TrimSpace(s[:len(s)-1])
		idx := lastSignNotInExponent(core)
		if idx > 0 {
			re := strings.TrimSpace(core[:idx])
			im := strings.TrimSpace(core[idx:])
			if im == "+" || im == "-" {
				return re, im + "1", true
			}
			return re, im, true
		}
		return "0", core, true
	}
	return s, "0", true
}

// lastSignNotInExponent finds the last '+'/'-' not part of an exponent
// and not at position 0.
func lastSignNotInExponent(s string) int {
	for i := len(s) - 1; i > 0; i-- {
		if s[i] == '+' || s[i] == '-' {
			if s[i-1] != 'e' && s[i-1] != 'E' {
				return i
			}
		}
	}
	return -1
}
