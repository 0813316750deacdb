// symexpr - symbolic expression calculator
//
// Parses an arithmetic expression, substitutes variable values, and prints
// its value or its derivative. Expressions containing the imaginary unit
// (3I, I) are handled in the complex domain, all others in the real one.
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
// For development builds, it will be "dev".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		errorExit(err)
	}
}

// errorExit prints err to stderr and exits with status 1.
func errorExit(err error) {
	fmt.Fprintf(os.Stderr, "symexpr: %v\n", err)
	os.Exit(1)
}
