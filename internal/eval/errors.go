package eval

import (
	"fmt"

	"github.com/kolkov/symexpr/internal/token"
)

// DomainError reports an operation applied outside its domain, such as a
// division by zero or the logarithm of zero.
type DomainError struct {
	Pos     token.Position // Position of the operator or call, if known
	Op      string         // "/", "^" or a function name
	Message string
	Err     error // Underlying scalar error (optional)
}

func (e *DomainError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// UnboundError reports a variable that had no value at evaluation time.
type UnboundError struct {
	Pos  token.Position
	Name string
}

func (e *UnboundError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: unbound variable %s", e.Pos, e.Name)
	}
	return "unbound variable " + e.Name
}
