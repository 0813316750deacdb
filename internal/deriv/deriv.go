// Package deriv builds symbolic derivatives of expression trees.
//
// The result is a new tree; the input is never modified or shared. Every
// rule that reuses an operand clones it, so later in-place changes to one
// part of the output cannot show through another part. No simplification
// is performed: d/dx(x^2) is
//
//	((x^2) * ((0 * ln(x)) + (2 * (1 / x))))
package deriv

import (
	"github.com/kolkov/symexpr/internal/ast"
	"github.com/kolkov/symexpr/internal/token"
	"github.com/kolkov/symexpr/internal/types"
)

// Differentiate returns the derivative of n with respect to variable.
func Differentiate[T types.Scalar[T]](n ast.Node[T], variable string) ast.Node[T] {
	switch n := n.(type) {
	case *ast.Number[T]:
		return ast.Const[T](0)

	case *ast.Variable[T]:
		if n.Name == variable {
			return ast.Const[T](1)
		}
		return ast.Const[T](0)

	case *ast.Binary[T]:
		return binary(n, variable)

	case *ast.Unary[T]:
		if n.Op != token.SUB {
			ast.Unreachable("differentiate", "unary operator %v", n.Op)
		}
		return ast.Neg(Differentiate(n.Operand, variable))

	case *ast.Call[T]:
		return call(n, variable)

	default:
		ast.Unreachable("differentiate", "unknown node %T", n)
		return nil
	}
}

func binary[T types.Scalar[T]](n *ast.Binary[T], x string) ast.Node[T] {
	f, g := n.Left, n.Right
	df := Differentiate(f, x)
	dg := Differentiate(g, x)

	switch n.Op {
	case token.ADD, token.SUB:
		// f ± g → df ± dg
		return ast.Bin(n.Op, df, dg)

	case token.MUL:
		// f * g → df*g + f*dg
		return ast.Bin(token.ADD,
			ast.Bin(token.MUL, df, ast.Clone(g)),
			ast.Bin(token.MUL, ast.Clone(f), dg))

	case token.DIV:
		// f / g → (df*g - f*dg) / g^2
		return ast.Bin(token.DIV,
			ast.Bin(token.SUB,
				ast.Bin(token.MUL, df, ast.Clone(g)),
				ast.Bin(token.MUL, ast.Clone(f), dg)),
			ast.Bin(token.POW, ast.Clone(g), ast.Const[T](2)))

	case token.POW:
		// f^g → f^g * (dg*ln(f) + g*(df/f)), valid for any exponent.
		return ast.Bin(token.MUL,
			ast.Clone[T](n),
			ast.Bin(token.ADD,
				ast.Bin(token.MUL, dg, ast.Fn(token.F_LN, ast.Clone(f))),
				ast.Bin(token.MUL, ast.Clone(g), ast.Bin(token.DIV, df, ast.Clone(f)))))

	default:
		ast.Unreachable("differentiate", "binary operator %v", n.Op)
		return nil
	}
}

func call[T types.Scalar[T]](n *ast.Call[T], x string) ast.Node[T] {
	f := n.Arg
	df := Differentiate(f, x)

	switch n.Func {
	case token.F_SIN:
		// sin(f) → cos(f) * df
		return ast.Bin(token.MUL, ast.Fn(token.F_COS, ast.Clone(f)), df)
	case token.F_COS:
		// cos(f) → -1 * sin(f) * df
		return ast.Bin(token.MUL,
			ast.Bin(token.MUL, ast.Const[T](-1), ast.Fn(token.F_SIN, ast.Clone(f))),
			df)
	case token.F_LN:
		// ln(f) → df / f
		return ast.Bin(token.DIV, df, ast.Clone(f))
	case token.F_EXP:
		// exp(f) → exp(f) * df
		return ast.Bin(token.MUL, ast.Fn(token.F_EXP, ast.Clone(f)), df)
	default:
		ast.Unreachable("differentiate", "function %v", n.Func)
		return nil
	}
}
