package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"

	"github.com/kolkov/symexpr"
)

// Environment variables providing flag defaults.
const (
	envStrict   = "SYMEXPR_STRICT"
	envLogLevel = "SYMEXPR_LOG_LEVEL"
	envNoColor  = "SYMEXPR_NO_COLOR"
)

// rootEnv holds the global flags and output streams shared by all commands.
type rootEnv struct {
	strict   bool
	logLevel string
	noColor  bool
	showAST  bool

	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
	ok     *color.Color
	fail   *color.Color
}

// newRootCmd returns the symexpr command tree writing to stdout and stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &rootEnv{stdout: stdout, stderr: stderr}
	cmd := &cobra.Command{
		Use:   "symexpr",
		Short: "Evaluate and differentiate arithmetic expressions",
		Long: `
Evaluates and symbolically differentiates arithmetic expressions over real
or complex numbers. Supported are + - * / ^, unary minus, parentheses and
the functions sin, cos, ln and exp. Complex mode is selected when the
expression or the --set values contain a literal with the imaginary unit I.
`,
		Version:           fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: root.setup,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.BoolVar(&root.strict, "strict", env.Bool(envStrict), "reject literals with digits after I, such as 3I5 (env "+envStrict+")")
	flags.StringVar(&root.logLevel, "log-level", env.Str(envLogLevel, "warn"), "log level: debug, info, warn or error (env "+envLogLevel+")")
	flags.BoolVar(&root.noColor, "no-color", env.Bool(envNoColor), "disable colored output (env "+envNoColor+")")
	flags.BoolVar(&root.showAST, "ast", false, "print the parsed tree to stderr")

	cmd.AddCommand(getEvalCmd(root), getDiffCmd(root), getSelftestCmd(root))
	return cmd
}

// setup builds the logger and colors from the parsed flags.
func (r *rootEnv) setup(_ *cobra.Command, _ []string) error {
	if r.logLevel == "" {
		r.logLevel = "warn"
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(r.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q", r.logLevel)
	}
	r.logger = slog.New(slog.NewTextHandler(r.stderr, &slog.HandlerOptions{Level: level}))

	r.ok = color.New(color.FgGreen)
	r.fail = color.New(color.FgRed, color.Bold)
	if r.noColor {
		r.ok.DisableColor()
		r.fail.DisableColor()
	}
	return nil
}

func (r *rootEnv) config() *symexpr.Config {
	return &symexpr.Config{StrictLiterals: r.strict, Logger: r.logger}
}

// isComplex reports whether any of texts selects the complex domain.
func isComplex(texts ...string) bool {
	for _, t := range texts {
		if symexpr.HasImaginaryUnit(t) {
			return true
		}
	}
	return false
}

// parse parses text and, with --ast, dumps the tree to stderr.
func parse[T symexpr.Scalar[T]](root *rootEnv, text string) (*symexpr.Expression[T], error) {
	e, err := symexpr.ParseWithConfig[T](text, root.config())
	if err != nil {
		return nil, err
	}
	if root.showAST {
		if err := e.Dump(root.stderr); err != nil {
			return nil, err
		}
	}
	return e, nil
}
