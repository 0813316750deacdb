package ast

import "fmt"

// InternalError reports a node, operator or function outside the closed
// grammar. It can only result from a programming defect, so it is raised
// with panic and not returned.
type InternalError struct {
	Where   string // Algorithm that hit the node
	Message string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error in %s: %s", e.Where, e.Message)
}

// Unreachable panics with an *InternalError.
func Unreachable(where, format string, args ...any) {
	panic(&InternalError{Where: where, Message: fmt.Sprintf(format, args...)})
}
