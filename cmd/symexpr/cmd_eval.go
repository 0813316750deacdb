package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kolkov/symexpr"
)

// evalEnv provides the environment for the eval command.
type evalEnv struct {
	root *rootEnv
	set  string
}

// getEvalCmd returns the definition of the eval command.
func getEvalCmd(root *rootEnv) *cobra.Command {
	ee := &evalEnv{root: root}
	cmd := &cobra.Command{
		Use:   "eval EXPR",
		Short: "Print the value of an expression",
		Example: `  symexpr eval "2^10"
  symexpr eval "x^2 + sin(y)" --set "x = 3 y = 0"
  symexpr eval "ln(x)" --set "x = -1 + 0I"`,
		Args: cobra.ExactArgs(1),
		RunE: ee.runEvalCmd,
	}
	cmd.Flags().StringVar(&ee.set, "set", "", `variable values, e.g. "x = 1 y = 2 - 3I"`)
	return cmd
}

func (ee *evalEnv) runEvalCmd(_ *cobra.Command, args []string) error {
	if isComplex(args[0], ee.set) {
		return runEval[symexpr.Complex](ee, args[0])
	}
	return runEval[symexpr.Real](ee, args[0])
}

func runEval[T symexpr.Scalar[T]](ee *evalEnv, text string) error {
	e, err := parse[T](ee.root, text)
	if err != nil {
		return err
	}
	if ee.set != "" {
		if err := e.SubsVar(ee.set); err != nil {
			return err
		}
	}
	v, err := e.Evaluate()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ee.root.stdout, v)
	return err
}
