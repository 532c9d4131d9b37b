package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/fpcomplex"
)

// rootOptions holds the global flags shared by all subcommands.
type rootOptions struct {
	Prec   string // "single" | "double" | "extended"
	Digits int    // significant digits; <0 means shortest (%g)
}

func (o *rootOptions) prec() (fpcomplex.Prec, error) {
	switch o.Prec {
	case "single":
		return fpcomplex.Single, nil
	case "double":
		return fpcomplex.Double, nil
	case "extended":
		return fpcomplex.Extended, nil
	}
	return 0, fmt.Errorf("invalid precision %q: must be single, double or extended", o.Prec)
}

// spec returns the printf specifier used for all numeric output.
func (o *rootOptions) spec() string {
	if o.Digits < 0 {
		return "%g"
	}
	return "%." + strconv.Itoa(o.Digits) + "g"
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "fpcalc",
		Short: "Native-precision complex calculator",
		Long: `fpcalc evaluates complex-number expressions with the fpcomplex library.

Operands accept the same literals as fpcomplex.Parse: "a+bi", "i",
plain reals, or the pair form "(a b)".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := opts.prec()
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Prec, "prec", "double", "working precision (single|double|extended)")
	cmd.PersistentFlags().IntVar(&opts.Digits, "digits", -1, "significant digits to print; -1 = shortest")

	cmd.AddCommand(newPowCommand(opts))
	cmd.AddCommand(newSqrtCommand(opts))
	cmd.AddCommand(newPolarCommand(opts))
	cmd.AddCommand(newSinCosCommand(opts))
	cmd.AddCommand(newTetrateCommand(opts))

	return cmd
}

// parseArg parses one operand at the selected precision.
func parseArg(opts *rootOptions, s string) (*fpcomplex.Complex, error) {
	p, err := opts.prec()
	if err != nil {
		return nil, err
	}
	return fpcomplex.Parse(s, p)
}

func newPowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pow <base> <exponent>",
		Short: "Raise a complex base to a complex exponent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := parseArg(opts, args[0])
			if err != nil {
				return err
			}
			w, err := parseArg(opts, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), opts.spec()+"\n", fpcomplex.Pow(z, w))
			return nil
		},
	}
}

func newSqrtCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sqrt <z>",
		Short: "Principal square root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := parseArg(opts, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), opts.spec()+"\n", fpcomplex.Sqrt(z))
			return nil
		},
	}
}

func newPolarCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "polar <z>",
		Short: "Modulus and argument of z",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := parseArg(opts, args[0])
			if err != nil {
				return err
			}
			spec := opts.spec()
			fmt.Fprintf(cmd.OutOrStdout(), "r = "+spec+"\n", z.Abs())
			fmt.Fprintf(cmd.OutOrStdout(), "theta = "+spec+"\n", z.Arg())
			return nil
		},
	}
}

func newSinCosCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sincos <z>",
		Short: "Sine and cosine of z",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := parseArg(opts, args[0])
			if err != nil {
				return err
			}
			spec := opts.spec()
			fmt.Fprintf(cmd.OutOrStdout(), "sin = "+spec+"\n", fpcomplex.Sin(z))
			fmt.Fprintf(cmd.OutOrStdout(), "cos = "+spec+"\n", fpcomplex.Cos(z))
			return nil
		},
	}
}

// newTetrateCommand evaluates the right-associated power tower
// b^(b^(...^b)) of integer height, a quick stress of the power engine.
func newTetrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tetrate <base> <height>",
		Short: "Integer power tower of a complex base",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseArg(opts, args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 0 {
				return fmt.Errorf("invalid height %q: need a non-negative integer", args[1])
			}
			x := fpcomplex.FromScalar(1.0).SetPrec(b.Prec())
			for i := 0; i < n; i++ {
				x = fpcomplex.Pow(b, x)
			}
			fmt.Fprintf(cmd.OutOrStdout(), opts.spec()+"\n", x)
			return nil
		},
	}
}
