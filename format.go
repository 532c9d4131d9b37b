package fpcomplex

import (
	"fmt"
	"io"
	"math"
)

// Rendering is delegated to the fmt package: both parts go through the
// same reconstructed format specifier, so width and precision flags apply
// uniformly. The joining sign comes from the sign bit of the imaginary
// part ('+' for unset, including +0), and the part then prints without a
// redundant sign of its own.

// String renders c as "<re><sign><im>i" with %g on both parts, e.g.
// "1.2+3.4i".
func (c *Complex) String() string { return fmt.Sprintf("%g", c) }

// Format implements fmt.Formatter for the verbs v, e, E, f, F, g and G.
func (c *Complex) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 'e', 'E', 'f', 'F', 'g', 'G':
		spec := fmt.FormatString(f, verb)
		fmt.Fprintf(f, spec, c.re)
		// With the '+' flag the part prints its own sign already.
		if !math.Signbit(c.im) && !f.Flag('+') {
			io.WriteString(f, "+")
		}
		fmt.Fprintf(f, spec, c.im)
		io.WriteString(f, "i")
	default:
		fmt.Fprintf(f, "%%!%c(fpcomplex.Complex=%s)", verb, c.String())
	}
}
