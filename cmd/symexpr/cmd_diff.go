package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kolkov/symexpr"
)

// diffEnv provides the environment for the diff command.
type diffEnv struct {
	root     *rootEnv
	variable string
	set      string
}

// getDiffCmd returns the definition of the diff command.
func getDiffCmd(root *rootEnv) *cobra.Command {
	de := &diffEnv{root: root}
	cmd := &cobra.Command{
		Use:   "diff EXPR",
		Short: "Print the derivative of an expression",
		Long: `
Prints the derivative of EXPR with respect to a variable. With --set, the
derivative is also evaluated at the given values and the value is printed
on a second line.
`,
		Example: `  symexpr diff "x^2"
  symexpr diff "sin(t) * exp(t)" --by t --set "t = 0"`,
		Args: cobra.ExactArgs(1),
		RunE: de.runDiffCmd,
	}
	cmd.Flags().StringVar(&de.variable, "by", "x", "variable to differentiate by")
	cmd.Flags().StringVar(&de.set, "set", "", `variable values, e.g. "x = 1 y = 2 - 3I"`)
	return cmd
}

func (de *diffEnv) runDiffCmd(_ *cobra.Command, args []string) error {
	if isComplex(args[0], de.set) {
		return runDiff[symexpr.Complex](de, args[0])
	}
	return runDiff[symexpr.Real](de, args[0])
}

func runDiff[T symexpr.Scalar[T]](de *diffEnv, text string) error {
	e, err := parse[T](de.root, text)
	if err != nil {
		return err
	}
	d := e.Differentiate(de.variable)
	if _, err := fmt.Fprintln(de.root.stdout, d); err != nil {
		return err
	}
	if de.set == "" {
		return nil
	}

	if err := d.SubsVar(de.set); err != nil {
		return err
	}
	v, err := d.Evaluate()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(de.root.stdout, v)
	return err
}
