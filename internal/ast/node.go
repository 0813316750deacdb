// Package ast defines the abstract syntax tree for arithmetic expressions.
//
// The tree is a closed set of five variants over a numeric domain T:
//
//	Node[T] (interface)
//	├── Number   - literal scalar; leaf
//	├── Variable - free identifier; leaf
//	├── Binary   - + - * / ^
//	├── Unary    - negation
//	└── Call     - sin, cos, ln, exp
//
// Every node owns its children exclusively. Algorithms that need a subtree
// in two places take a Clone first, so mutating one branch is never
// observable through another.
package ast

import (
	"github.com/kolkov/symexpr/internal/token"
	"github.com/kolkov/symexpr/internal/types"
)

// Node is the interface implemented by all AST nodes.
type Node[T types.Scalar[T]] interface {
	// Pos returns the position of the first character belonging to this
	// node, or token.NoPos for nodes built by a tree transformation.
	Pos() token.Position

	exprNode(T) // marker method to prevent external implementations
}

// BaseExpr provides the source position for all nodes.
type BaseExpr struct {
	StartPos token.Position // Position of first token
}

func (b *BaseExpr) Pos() token.Position { return b.StartPos }

// MakeBaseExpr creates a BaseExpr with the given position.
func MakeBaseExpr(pos token.Position) BaseExpr {
	return BaseExpr{StartPos: pos}
}

// Number is a literal scalar.
// Examples: 42, 3.14, 3I
type Number[T types.Scalar[T]] struct {
	BaseExpr
	Value T
}

// Variable is a free identifier.
// Examples: x, theta
type Variable[T types.Scalar[T]] struct {
	BaseExpr
	Name string // lowercase
}

// Binary is a binary operation.
// Examples: a + b, x ^ 2
type Binary[T types.Scalar[T]] struct {
	BaseExpr
	Op    token.Token // ADD, SUB, MUL, DIV or POW
	Left  Node[T]
	Right Node[T]
}

// Unary is a prefix operation. Negation is the only one.
type Unary[T types.Scalar[T]] struct {
	BaseExpr
	Op      token.Token // SUB
	Operand Node[T]
}

// Call is a call of a built-in function.
// Examples: sin(x), ln(x + 1)
type Call[T types.Scalar[T]] struct {
	BaseExpr
	Func token.Token // F_SIN, F_COS, F_LN or F_EXP
	Arg  Node[T]
}

func (*Number[T]) exprNode(T)   {}
func (*Variable[T]) exprNode(T) {}
func (*Binary[T]) exprNode(T)   {}
func (*Unary[T]) exprNode(T)    {}
func (*Call[T]) exprNode(T)     {}

// -----------------------------------------------------------------------------
// Constructor helpers
// -----------------------------------------------------------------------------

// These build position-less nodes for tree transformations.

// Num returns a literal node holding v.
func Num[T types.Scalar[T]](v T) Node[T] {
	return &Number[T]{Value: v}
}

// Const returns a literal node holding the real number v.
func Const[T types.Scalar[T]](v float64) Node[T] {
	return &Number[T]{Value: types.Of[T](v)}
}

// Var returns a variable node.
func Var[T types.Scalar[T]](name string) Node[T] {
	return &Variable[T]{Name: name}
}

// Bin returns a binary node. op must satisfy token.IsBinary.
func Bin[T types.Scalar[T]](op token.Token, left, right Node[T]) Node[T] {
	if !op.IsBinary() {
		Unreachable("ast.Bin", "operator %v", op)
	}
	return &Binary[T]{Op: op, Left: left, Right: right}
}

// Neg returns the negation of x.
func Neg[T types.Scalar[T]](x Node[T]) Node[T] {
	return &Unary[T]{Op: token.SUB, Operand: x}
}

// Fn returns a call of the builtin fn.
func Fn[T types.Scalar[T]](fn token.Token, arg Node[T]) Node[T] {
	if !fn.IsBuiltin() {
		Unreachable("ast.Fn", "function %v", fn)
	}
	return &Call[T]{Func: fn, Arg: arg}
}

// Compile-time checks.
var (
	_ Node[types.Real]    = (*Number[types.Real])(nil)
	_ Node[types.Real]    = (*Variable[types.Real])(nil)
	_ Node[types.Complex] = (*Binary[types.Complex])(nil)
	_ Node[types.Complex] = (*Unary[types.Complex])(nil)
	_ Node[types.Complex] = (*Call[types.Complex])(nil)
)
