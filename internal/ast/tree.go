package ast

import (
	"strings"

	"github.com/kolkov/symexpr/internal/token"
	"github.com/kolkov/symexpr/internal/types"
)

// Clone returns a deep copy of n. Positions are preserved.
func Clone[T types.Scalar[T]](n Node[T]) Node[T] {
	switch n := n.(type) {
	case nil:
		return nil
	case *Number[T]:
		c := *n
		return &c
	case *Variable[T]:
		c := *n
		return &c
	case *Binary[T]:
		return &Binary[T]{BaseExpr: n.BaseExpr, Op: n.Op, Left: Clone(n.Left), Right: Clone(n.Right)}
	case *Unary[T]:
		return &Unary[T]{BaseExpr: n.BaseExpr, Op: n.Op, Operand: Clone(n.Operand)}
	case *Call[T]:
		return &Call[T]{BaseExpr: n.BaseExpr, Func: n.Func, Arg: Clone(n.Arg)}
	default:
		Unreachable("clone", "unknown node %T", n)
		return nil
	}
}

// String serializes n with every composite node parenthesized, so the
// result re-parses to the same shape regardless of precedence.
//
//	Binary  (<left> <op> <right>), or (<left>^<right>) for powers
//	Unary   (-<operand>)
//	Call    <name>(<arg>)
func String[T types.Scalar[T]](n Node[T]) string {
	var sb strings.Builder
	writeNode(&sb, n)
	return sb.String()
}

func writeNode[T types.Scalar[T]](sb *strings.Builder, n Node[T]) {
	switch n := n.(type) {
	case nil:
	case *Number[T]:
		sb.WriteString(n.Value.String())
	case *Variable[T]:
		sb.WriteString(n.Name)
	case *Binary[T]:
		sb.WriteByte('(')
		writeNode(sb, n.Left)
		if n.Op == token.POW {
			sb.WriteByte('^')
		} else {
			sb.WriteByte(' ')
			sb.WriteString(n.Op.String())
			sb.WriteByte(' ')
		}
		writeNode(sb, n.Right)
		sb.WriteByte(')')
	case *Unary[T]:
		sb.WriteByte('(')
		sb.WriteString(n.Op.String())
		writeNode(sb, n.Operand)
		sb.WriteByte(')')
	case *Call[T]:
		sb.WriteString(n.Func.String())
		sb.WriteByte('(')
		writeNode(sb, n.Arg)
		sb.WriteByte(')')
	default:
		Unreachable("serialize", "unknown node %T", n)
	}
}

// Walk traverses an AST in depth-first order.
// For each node, it calls fn(node). If fn returns false,
// the children of that node are not visited.
//
// Example: collect variable names
//
//	ast.Walk(root, func(n ast.Node[types.Real]) bool {
//	    if v, ok := n.(*ast.Variable[types.Real]); ok {
//	        names = append(names, v.Name)
//	    }
//	    return true
//	})
func Walk[T types.Scalar[T]](n Node[T], fn func(Node[T]) bool) {
	if n == nil || !fn(n) {
		return
	}

	switch n := n.(type) {
	case *Number[T], *Variable[T]:
		// no children
	case *Binary[T]:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *Unary[T]:
		Walk(n.Operand, fn)
	case *Call[T]:
		Walk(n.Arg, fn)
	}
}

// Count returns the number of nodes in n.
func Count[T types.Scalar[T]](n Node[T]) int {
	count := 0
	Walk(n, func(Node[T]) bool {
		count++
		return true
	})
	return count
}
