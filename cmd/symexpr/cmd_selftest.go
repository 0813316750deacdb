package main

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/spf13/cobra"

	"github.com/kolkov/symexpr"
)

// selfTest is one built-in check of the library.
type selfTest struct {
	name string
	run  func() error
}

var selfTests = []selfTest{
	{"complex derivative", func() error {
		d := symexpr.MustParse[symexpr.Complex]("-6x^2 -4x^x + 000010 +      sin(y) * exp((-12I + 0003) * x)").Differentiate("x")
		return expectString(d,
			"((((((-0) * (x^2)) + ((-6) * ((x^2) * ((0 * ln(x)) + (2 * (1 / x)))))) - ((0 * (x^x)) + (4 * ((x^x) * ((1 * ln(x)) + (x * (1 / x))))))) + 0) + (((cos(y) * 0) * exp((((-12I) + 3) * x))) + (sin(y) * (exp((((-12I) + 3) * x)) * ((((-0) + 0) * x) + (((-12I) + 3) * 1))))))")
	}},
	{"real derivative", func() error {
		d := symexpr.MustParse[symexpr.Real]("-6x^2 -4x^x + 10 +      sin(y) * exp((-12x + 3) * x)").Differentiate("x")
		return expectString(d,
			"((((((-0) * (x^2)) + ((-6) * ((x^2) * ((0 * ln(x)) + (2 * (1 / x)))))) - ((0 * (x^x)) + (4 * ((x^x) * ((1 * ln(x)) + (x * (1 / x))))))) + 0) + (((cos(y) * 0) * exp(((((-12) * x) + 3) * x))) + (sin(y) * (exp(((((-12) * x) + 3) * x)) * ((((((-0) * x) + ((-12) * 1)) + 0) * x) + ((((-12) * x) + 3) * 1))))))")
	}},
	{"complex substitution", func() error {
		e := symexpr.MustParse[symexpr.Complex]("  -sin(x) *         y")
		if err := e.SubsVar("x = -0013.000I + 4 y = -12 - 123I"); err != nil {
			return err
		}
		return expectString(e, "((-sin((4 + (-13I)))) * ((-12) + (-123I)))")
	}},
	{"complex construction from a scalar", func() error {
		e := symexpr.FromScalar(symexpr.Complex(-1234)).Add(symexpr.MustParse[symexpr.Complex]("-sin(x) *         y"))
		return expectString(e, "((-1234) + ((-sin(x)) * y))")
	}},
	{"real arithmetic", func() error {
		a := symexpr.MustParse[symexpr.Real]("ln(y+1)").Div(symexpr.MustParse[symexpr.Real]("exp(x^2)"))
		b := symexpr.MustParse[symexpr.Real]("-sin(t+1)").Mul(symexpr.MustParse[symexpr.Real]("-cos(x^2)"))
		return expectString(a.Pow(b), "((ln((y + 1)) / exp((x^2)))^((-sin((t + 1))) * (-cos((x^2)))))")
	}},
	{"real arithmetic, substitution and evaluation", func() error {
		a := symexpr.MustParse[symexpr.Real]("000014ln(4y+1)").Div(symexpr.MustParse[symexpr.Real]("exp(y*x^2)"))
		b := symexpr.MustParse[symexpr.Real]("-sin(t+1)").Mul(symexpr.MustParse[symexpr.Real]("-cos(x^2)"))
		e := a.Pow(b)
		if err := e.SubsVar("x = -1 y = 12 t = 11"); err != nil {
			return err
		}
		v, err := e.Evaluate()
		if err != nil {
			return err
		}
		if math.Abs(float64(v)-10.17457074525700708802) > 1e-12 {
			return fmt.Errorf("got %v", v)
		}
		return nil
	}},
	{"complex arithmetic, substitution and evaluation", func() error {
		a := symexpr.MustParse[symexpr.Complex]("   0014.05ln   (4   y+1    )").Div(symexpr.MustParse[symexpr.Complex]("exp(y*0.145x^2)"))
		b := symexpr.MustParse[symexpr.Complex]("-001.012   sin(t+1)").Mul(symexpr.MustParse[symexpr.Complex]("-cos(x^2)"))
		e := a.Pow(b)
		if err := e.SubsVar("x = -1+  I y = 12 - I003.00t = 11"); err != nil {
			return err
		}
		v, err := e.Evaluate()
		if err != nil {
			return err
		}
		want := complex(0.000042446137086360141, -0.000019545452948635392)
		if cmplx.Abs(complex128(v)-want) > 1e-15 {
			return fmt.Errorf("got %v", v)
		}
		return nil
	}},
}

func expectString(e fmt.Stringer, want string) error {
	if got := e.String(); got != want {
		return fmt.Errorf("got %s", got)
	}
	return nil
}

// getSelftestCmd returns the definition of the selftest command.
func getSelftestCmd(root *rootEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in checks",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSelfTests(root, selfTests)
		},
	}
}

func runSelfTests(root *rootEnv, tests []selfTest) error {
	failed := 0
	for i, tt := range tests {
		err := tt.run()
		if err == nil {
			fmt.Fprintf(root.stdout, "Test %d (%s): %s\n", i+1, tt.name, root.ok.Sprint("[ OK ]"))
			continue
		}
		failed++
		fmt.Fprintf(root.stdout, "Test %d (%s): %s %v\n", i+1, tt.name, root.fail.Sprint("[FAIL]"), err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d self-tests failed", failed, len(tests))
	}
	return nil
}
