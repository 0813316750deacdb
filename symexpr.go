package symexpr

import (
	"io"
	"math"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/kolkov/symexpr/internal/ast"
	"github.com/kolkov/symexpr/internal/deriv"
	"github.com/kolkov/symexpr/internal/eval"
	"github.com/kolkov/symexpr/internal/lexer"
	"github.com/kolkov/symexpr/internal/parser"
	"github.com/kolkov/symexpr/internal/subst"
	"github.com/kolkov/symexpr/internal/token"
	"github.com/kolkov/symexpr/internal/types"
)

// Version is the symexpr version string.
const Version = "0.1.0"

// Scalar is the set of operations a numeric domain provides.
type Scalar[T any] = types.Scalar[T]

// Real is the real number domain.
type Real = types.Real

// Complex is the complex number domain.
type Complex = types.Complex

// Expression owns one expression tree over the domain T.
//
// The zero Expression is empty: it evaluates to ErrEmpty, serializes to
// "" and is left unchanged by Differentiate and SubsVar. Expressions
// never share nodes; Clone and every operator copy deeply. An Expression
// is not safe for concurrent use.
type Expression[T Scalar[T]] struct {
	root   ast.Node[T]
	config *Config
}

// Parse parses text into an Expression using the default configuration.
//
// Example:
//
//	e, err := symexpr.Parse[symexpr.Real]("14ln(4y+1) / exp(y*x^2)")
func Parse[T Scalar[T]](text string) (*Expression[T], error) {
	return ParseWithConfig[T](text, nil)
}

// ParseWithConfig parses text into an Expression. If config is nil,
// defaults are used. The configuration stays with the Expression and
// everything derived from it.
func ParseWithConfig[T Scalar[T]](text string, config *Config) (*Expression[T], error) {
	cfg := config.resolve()
	root, err := parser.Parse[T](text, cfg.mode())
	if err != nil {
		cfg.Logger.Debug("parse failed", "input", text, "error", err)
		return nil, convertError(err)
	}
	cfg.Logger.Debug("parsed expression", "input", text, "nodes", ast.Count(root))
	return &Expression[T]{root: root, config: cfg}, nil
}

// MustParse is like Parse but panics if text cannot be parsed.
// It simplifies initialization of global expressions.
func MustParse[T Scalar[T]](text string) *Expression[T] {
	e, err := Parse[T](text)
	if err != nil {
		panic(err)
	}
	return e
}

// FromScalar returns an Expression for the value v. The value is
// rendered with the literal rule and parsed back, so 3-4I becomes
// (3 - 4I). Values without a literal form (NaN, infinities) are held as
// a single Number.
func FromScalar[T Scalar[T]](v T) *Expression[T] {
	if re, im := v.Parts(); finite(re) && finite(im) {
		if e, err := Parse[T](v.String()); err == nil {
			return e
		}
	}
	return &Expression[T]{root: ast.Num(v), config: (*Config)(nil).resolve()}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (e *Expression[T]) cfg() *Config {
	if e.config == nil {
		e.config = (*Config)(nil).resolve()
	}
	return e.config
}

func (e *Expression[T]) derived(root ast.Node[T]) *Expression[T] {
	return &Expression[T]{root: root, config: e.cfg()}
}

// IsEmpty reports whether e holds no tree.
func (e *Expression[T]) IsEmpty() bool {
	return e == nil || e.root == nil
}

// Clone returns an independent deep copy of e.
func (e *Expression[T]) Clone() *Expression[T] {
	if e.IsEmpty() {
		return &Expression[T]{}
	}
	return e.derived(ast.Clone(e.root))
}

// Take moves the tree of e into a new Expression and leaves e empty.
func (e *Expression[T]) Take() *Expression[T] {
	if e.IsEmpty() {
		return &Expression[T]{}
	}
	out := e.derived(e.root)
	e.root = nil
	return out
}

// Add returns (e + other). Both operands are copied. The result is empty
// if either operand is.
func (e *Expression[T]) Add(other *Expression[T]) *Expression[T] {
	return e.combine(token.ADD, other)
}

// Sub returns (e - other).
func (e *Expression[T]) Sub(other *Expression[T]) *Expression[T] {
	return e.combine(token.SUB, other)
}

// Mul returns (e * other).
func (e *Expression[T]) Mul(other *Expression[T]) *Expression[T] {
	return e.combine(token.MUL, other)
}

// Div returns (e / other).
func (e *Expression[T]) Div(other *Expression[T]) *Expression[T] {
	return e.combine(token.DIV, other)
}

// Pow returns (e ^ other).
func (e *Expression[T]) Pow(other *Expression[T]) *Expression[T] {
	return e.combine(token.POW, other)
}

func (e *Expression[T]) combine(op token.Token, other *Expression[T]) *Expression[T] {
	if e.IsEmpty() || other.IsEmpty() {
		return &Expression[T]{}
	}
	return e.derived(ast.Bin(op, ast.Clone(e.root), ast.Clone(other.root)))
}

// Evaluate computes the value of e. Every variable must have been
// substituted. Errors are *DomainError, *UnboundVariableError or ErrEmpty.
func (e *Expression[T]) Evaluate() (T, error) {
	if e.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	v, err := eval.Evaluate(e.root)
	if err != nil {
		return v, convertError(err)
	}
	return v, nil
}

// Differentiate returns the derivative of e with respect to variable.
// The variable name is case-insensitive. e is not modified.
func (e *Expression[T]) Differentiate(variable string) *Expression[T] {
	if e.IsEmpty() {
		return &Expression[T]{}
	}
	variable = strings.ToLower(variable)
	d := deriv.Differentiate(e.root, variable)
	e.cfg().Logger.Debug("differentiated expression",
		"variable", variable, "nodes", ast.Count(e.root), "result_nodes", ast.Count(d))
	return e.derived(d)
}

// SubsVar replaces variables with values in place. assignments is a list
// of name = value pairs where each value is a signed sum of real and
// imaginary literals:
//
//	e.SubsVar("x = -13I + 4 y = 12")
//
// Only the real part of a value is used by real expressions. Variables
// without an assignment are left in place. A malformed list returns a
// *SyntaxError and leaves e unchanged.
func (e *Expression[T]) SubsVar(assignments string) error {
	cfg := e.cfg()
	bindings, err := parser.ParseBindings(assignments, cfg.mode())
	if err != nil {
		return convertError(err)
	}
	if e.root == nil {
		return nil
	}
	e.root = subst.Substitute(e.root, bindings)
	cfg.Logger.Debug("substituted variables", "bindings", len(bindings), "nodes", ast.Count(e.root))
	return nil
}

// String returns the fully parenthesized form of e, or "" if e is empty.
// The result parses back to the same tree.
func (e *Expression[T]) String() string {
	if e.IsEmpty() {
		return ""
	}
	return ast.String(e.root)
}

// Variables returns the sorted names of the free variables of e.
func (e *Expression[T]) Variables() []string {
	if e.IsEmpty() {
		return nil
	}
	var names []string
	ast.Walk(e.root, func(n ast.Node[T]) bool {
		if v, ok := n.(*ast.Variable[T]); ok {
			names = append(names, v.Name)
		}
		return true
	})
	slices.Sort(names)
	return slices.Compact(names)
}

// Dump writes an indented outline of the tree of e to w.
func (e *Expression[T]) Dump(w io.Writer) error {
	if e.IsEmpty() {
		return nil
	}
	return ast.Fprint(w, e.root)
}

// Fingerprint returns a 64-bit hash of the serialized form of e.
// Structurally equal expressions have equal fingerprints.
func (e *Expression[T]) Fingerprint() uint64 {
	return xxhash.Sum64String(e.String())
}

// HasImaginaryUnit reports whether text contains a numeric literal with
// the imaginary unit I, such as 3I or I. Identifiers containing an upper
// case I, like SIN, do not count.
func HasImaginaryUnit(text string) bool {
	for _, tok := range lexer.Tokenize(text) {
		if tok.Type == token.NUMBER && strings.Contains(tok.Value, "I") {
			return true
		}
	}
	return false
}
