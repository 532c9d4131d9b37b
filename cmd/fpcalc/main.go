// fpcalc is a small driver for the fpcomplex library: it parses complex
// operands from the command line and prints the results of the library's
// power, root, trigonometric and polar operations.
//
// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fpcalc:", err)
		os.Exit(1)
	}
}
