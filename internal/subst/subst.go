// Package subst replaces variables in expression trees with values.
package subst

import (
	"math"

	"github.com/kolkov/symexpr/internal/ast"
	"github.com/kolkov/symexpr/internal/token"
	"github.com/kolkov/symexpr/internal/types"
)

// Substitute replaces every variable of n that has a binding with a
// literal subtree for its value and returns the new root. Composite nodes
// are updated in place; unbound variables are left as they are.
//
// A value is projected onto the domain T first, so a real tree only sees
// real parts. The replacement is a Number, a negated Number for negative
// values, or for a complex value with both parts nonzero their sum:
//
//	x = 3 + 4I   →  (3 + 4I)
//	x = 4 - 13I  →  (4 + (-13I))
func Substitute[T types.Scalar[T]](n ast.Node[T], bindings map[string]complex128) ast.Node[T] {
	switch n := n.(type) {
	case nil:
		return nil

	case *ast.Number[T]:
		return n

	case *ast.Variable[T]:
		if v, ok := bindings[n.Name]; ok {
			return Value[T](v)
		}
		return n

	case *ast.Binary[T]:
		n.Left = Substitute(n.Left, bindings)
		n.Right = Substitute(n.Right, bindings)
		return n

	case *ast.Unary[T]:
		n.Operand = Substitute(n.Operand, bindings)
		return n

	case *ast.Call[T]:
		n.Arg = Substitute(n.Arg, bindings)
		return n

	default:
		ast.Unreachable("substitute", "unknown node %T", n)
		return nil
	}
}

// Value returns a freshly built literal subtree for v in domain T.
func Value[T types.Scalar[T]](v complex128) ast.Node[T] {
	var zero T
	re, im := zero.FromParts(real(v), imag(v)).Parts()

	switch {
	case re != 0 && im != 0:
		return ast.Bin(token.ADD, signed[T](re, false), signed[T](im, true))
	case im != 0:
		return signed[T](im, true)
	default:
		return signed[T](re, false)
	}
}

// signed returns a literal for one component, negated when v < 0.
func signed[T types.Scalar[T]](v float64, imaginary bool) ast.Node[T] {
	var zero T
	mag := math.Abs(v)
	lit := zero.FromParts(mag, 0)
	if imaginary {
		lit = zero.FromParts(0, mag)
	}
	if v < 0 {
		return ast.Neg(ast.Num(lit))
	}
	return ast.Num(lit)
}
