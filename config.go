package symexpr

import (
	"log/slog"

	"github.com/kolkov/symexpr/internal/parser"
)

// Config holds options for parsing and transforming expressions.
// A nil *Config means the defaults.
type Config struct {
	// StrictLiterals rejects numeric literals with digits after the
	// imaginary unit. By default 3I5 is accepted and means 15I, and
	// I2 means 2I. Applies to expressions and to SubsVar values.
	StrictLiterals bool

	// Logger receives debug records for parse, differentiate and
	// substitute calls. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// resolve returns a copy of c with default values filled in.
func (c *Config) resolve() *Config {
	out := Config{}
	if c != nil {
		out = *c
	}
	out.applyDefaults()
	return &out
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

func (c *Config) mode() parser.Mode {
	var m parser.Mode
	if c.StrictLiterals {
		m |= parser.StrictLiterals
	}
	return m
}
