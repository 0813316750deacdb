package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/coregx/coregex"
)

// ErrMalformedLiteral is wrapped by every ParseLiteral error.
var ErrMalformedLiteral = errors.New("malformed number")

// Literal shapes. A literal is a decimal magnitude optionally followed by
// the imaginary unit I. The permissive form also accepts a magnitude after
// the unit which multiplies the one before it, so 3I5 is 15I and I2 is 2I.
var (
	permissiveLiteral = mustCompile(`^[0-9]*\.?[0-9]*(?:I[0-9]*\.?[0-9]*)?$`)
	strictLiteral     = mustCompile(`^(?:[0-9]+\.?[0-9]*|\.[0-9]+)?I?$`)
)

func mustCompile(pattern string) *coregex.Regexp {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// ParseLiteral converts a numeric-literal token into its real and
// imaginary components. Exactly one of re and im is set. In strict mode
// digits after the imaginary unit are rejected.
func ParseLiteral(s string, strict bool) (re, im float64, err error) {
	shape := permissiveLiteral
	if strict {
		shape = strictLiteral
	}
	if s == "" || !shape.MatchString(s) {
		return 0, 0, fmt.Errorf("%w %q", ErrMalformedLiteral, s)
	}

	before, after, imaginary := strings.Cut(s, "I")
	if !imaginary {
		if before == "" {
			return 0, 0, fmt.Errorf("%w %q", ErrMalformedLiteral, s)
		}
		re, err = magnitude(s, before)
		return re, 0, err
	}

	left, err := magnitude(s, before)
	if err != nil {
		return 0, 0, err
	}
	right, err := magnitude(s, after)
	if err != nil {
		return 0, 0, err
	}
	return 0, left * right, nil
}

// magnitude parses one side of a literal; an empty side is 1.
func magnitude(lit, part string) (float64, error) {
	if part == "" {
		return 1, nil
	}
	if part == "." {
		return 0, fmt.Errorf("%w %q", ErrMalformedLiteral, lit)
	}
	f, err := strconv.ParseFloat(part, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrMalformedLiteral, lit, err)
	}
	return f, nil
}

// Literal parses s and returns it as a value of domain T. Imaginary
// literals collapse to zero in domains without an imaginary axis.
func Literal[T Scalar[T]](s string, strict bool) (T, error) {
	re, im, err := ParseLiteral(s, strict)
	if err != nil {
		var zero T
		return zero, err
	}
	var z T
	return z.FromParts(re, im), nil
}
