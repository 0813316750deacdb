package symexpr

import (
	"errors"
	"fmt"

	"github.com/kolkov/symexpr/internal/ast"
	"github.com/kolkov/symexpr/internal/eval"
	"github.com/kolkov/symexpr/internal/parser"
)

// ErrEmpty is returned when evaluating an Expression that holds no tree.
var ErrEmpty = errors.New("empty expression")

// SyntaxError represents malformed expression or substitution text.
type SyntaxError struct {
	Line    int    // 1-based line number
	Column  int    // 1-based column number
	Message string // Error description

	err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d:%d: %s", e.Line, e.Column, e.Message)
}

func (e *SyntaxError) Unwrap() error { return e.err }

// DomainError represents an evaluation outside an operation's domain:
// division by zero, the logarithm of zero or of a negative real, or an
// even root of a negative real.
//
// Line and Column locate the operator in the parsed text. Both are zero
// when the operator was created by Differentiate. Operators that
// Differentiate copies from its input keep their original position.
type DomainError struct {
	Line    int
	Column  int
	Op      string // "/", "^" or "ln"
	Message string

	err error
}

func (e *DomainError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("domain error at %d:%d: %s", e.Line, e.Column, e.Message)
	}
	return "domain error: " + e.Message
}

func (e *DomainError) Unwrap() error { return e.err }

// UnboundVariableError is returned by Evaluate when a variable was never
// substituted.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable %s", e.Name)
}

// InternalError reports a tree node outside the closed grammar. It is
// raised with panic and indicates a bug in this package.
type InternalError = ast.InternalError

// convertError maps internal errors to the public error types.
func convertError(err error) error {
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return &SyntaxError{
			Line:    pe.Pos.Line,
			Column:  pe.Pos.Column,
			Message: pe.Message,
			err:     pe.Err,
		}
	}
	var de *eval.DomainError
	if errors.As(err, &de) {
		return &DomainError{
			Line:    de.Pos.Line,
			Column:  de.Pos.Column,
			Op:      de.Op,
			Message: de.Message,
			err:     de.Err,
		}
	}
	var ue *eval.UnboundError
	if errors.As(err, &ue) {
		return &UnboundVariableError{Name: ue.Name}
	}
	return err
}
