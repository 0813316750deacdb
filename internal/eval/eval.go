// Package eval computes the value of an expression tree.
package eval

import (
	"github.com/kolkov/symexpr/internal/ast"
	"github.com/kolkov/symexpr/internal/token"
	"github.com/kolkov/symexpr/internal/types"
)

// Evaluate returns the value of n. Every variable must already have been
// substituted. The tree is not modified.
func Evaluate[T types.Scalar[T]](n ast.Node[T]) (T, error) {
	var zero T

	switch n := n.(type) {
	case *ast.Number[T]:
		return n.Value, nil

	case *ast.Variable[T]:
		return zero, &UnboundError{Pos: n.Pos(), Name: n.Name}

	case *ast.Binary[T]:
		left, err := Evaluate(n.Left)
		if err != nil {
			return zero, err
		}
		right, err := Evaluate(n.Right)
		if err != nil {
			return zero, err
		}
		return binary(n, left, right)

	case *ast.Unary[T]:
		if n.Op != token.SUB {
			ast.Unreachable("evaluate", "unary operator %v", n.Op)
		}
		v, err := Evaluate(n.Operand)
		if err != nil {
			return zero, err
		}
		return v.Neg(), nil

	case *ast.Call[T]:
		arg, err := Evaluate(n.Arg)
		if err != nil {
			return zero, err
		}
		return call(n, arg)

	default:
		ast.Unreachable("evaluate", "unknown node %T", n)
		return zero, nil
	}
}

func binary[T types.Scalar[T]](n *ast.Binary[T], left, right T) (T, error) {
	switch n.Op {
	case token.ADD:
		return left.Add(right), nil
	case token.SUB:
		return left.Sub(right), nil
	case token.MUL:
		return left.Mul(right), nil
	case token.DIV:
		if right.IsZero() {
			var zero T
			return zero, &DomainError{Pos: n.Pos(), Op: "/", Message: "division by zero"}
		}
		return left.Div(right), nil
	case token.POW:
		v, err := left.Pow(right)
		if err != nil {
			return v, &DomainError{Pos: n.Pos(), Op: "^", Message: err.Error(), Err: err}
		}
		return v, nil
	default:
		ast.Unreachable("evaluate", "binary operator %v", n.Op)
		var zero T
		return zero, nil
	}
}

func call[T types.Scalar[T]](n *ast.Call[T], arg T) (T, error) {
	switch n.Func {
	case token.F_SIN:
		return arg.Sin(), nil
	case token.F_COS:
		return arg.Cos(), nil
	case token.F_EXP:
		return arg.Exp(), nil
	case token.F_LN:
		if arg.IsZero() {
			var zero T
			return zero, &DomainError{Pos: n.Pos(), Op: "ln", Message: "logarithm of zero"}
		}
		v, err := arg.Log()
		if err != nil {
			return v, &DomainError{Pos: n.Pos(), Op: "ln", Message: err.Error(), Err: err}
		}
		return v, nil
	default:
		ast.Unreachable("evaluate", "function %v", n.Func)
		var zero T
		return zero, nil
	}
}
