package ast_test

import (
	"strings"
	"testing"

	"github.com/kolkov/symexpr/internal/ast"
	"github.com/kolkov/symexpr/internal/token"
	"github.com/kolkov/symexpr/internal/types"
)

type (
	R = types.Real
	C = types.Complex
)

// sample builds sin(x) * (3 - (-y)) ^ 2.
func sample() ast.Node[R] {
	return ast.Bin(token.MUL,
		ast.Fn(token.F_SIN, ast.Var[R]("x")),
		ast.Bin(token.POW,
			ast.Bin(token.SUB, ast.Const[R](3), ast.Neg(ast.Var[R]("y"))),
			ast.Const[R](2)))
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node[R]
		want string
	}{
		{"number", ast.Const[R](42), "42"},
		{"negative number", ast.Const[R](-1), "-1"},
		{"variable", ast.Var[R]("x"), "x"},
		{"sum", ast.Bin(token.ADD, ast.Var[R]("x"), ast.Const[R](1)), "(x + 1)"},
		{"power", ast.Bin(token.POW, ast.Var[R]("x"), ast.Const[R](2)), "(x^2)"},
		{"negation", ast.Neg(ast.Var[R]("x")), "(-x)"},
		{"call", ast.Fn(token.F_LN, ast.Var[R]("x")), "ln(x)"},
		{"nested", sample(), "(sin(x) * ((3 - (-y))^2))"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ast.String(tt.node); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComplexNumberString(t *testing.T) {
	n := ast.Bin(token.ADD, ast.Const[C](4), ast.Neg(ast.Num(C(complex(0, 13)))))
	if got, want := ast.String(n), "(4 + (-13I))"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCloneIndependence(t *testing.T) {
	orig := sample()
	want := ast.String(orig)

	clone := ast.Clone(orig)
	if got := ast.String(clone); got != want {
		t.Fatalf("Clone() = %q, want %q", got, want)
	}

	// Mutate every node of the clone.
	ast.Walk(clone, func(n ast.Node[R]) bool {
		switch n := n.(type) {
		case *ast.Variable[R]:
			n.Name = "z"
		case *ast.Number[R]:
			n.Value = 7
		case *ast.Binary[R]:
			n.Op = token.ADD
		}
		return true
	})

	if got := ast.String(orig); got != want {
		t.Errorf("original changed after mutating clone: %q, want %q", got, want)
	}
	if got := ast.String(clone); got == want {
		t.Error("clone was not mutated")
	}
}

func TestClonePreservesPositions(t *testing.T) {
	pos := token.Position{Line: 1, Column: 5, Offset: 4}
	n := &ast.Variable[R]{BaseExpr: ast.MakeBaseExpr(pos), Name: "x"}
	if got := ast.Clone[R](n).Pos(); got != pos {
		t.Errorf("Pos() = %v, want %v", got, pos)
	}
	if got := ast.Var[R]("x").Pos(); got.IsValid() {
		t.Errorf("constructed node has position %v", got)
	}
}

func TestWalk(t *testing.T) {
	var names []string
	ast.Walk(sample(), func(n ast.Node[R]) bool {
		if v, ok := n.(*ast.Variable[R]); ok {
			names = append(names, v.Name)
		}
		return true
	})
	if got := strings.Join(names, ","); got != "x,y" {
		t.Errorf("variables = %q, want x,y", got)
	}

	// Returning false prunes the subtree.
	visited := 0
	ast.Walk(sample(), func(n ast.Node[R]) bool {
		visited++
		_, isCall := n.(*ast.Call[R])
		return !isCall
	})
	if visited != ast.Count(sample())-1 {
		t.Errorf("visited %d nodes, want %d", visited, ast.Count(sample())-1)
	}
}

func TestCount(t *testing.T) {
	// mul, sin, x, pow, sub, 3, neg, y, 2
	if got := ast.Count(sample()); got != 9 {
		t.Errorf("Count() = %d, want 9", got)
	}
	if got := ast.Count[R](nil); got != 0 {
		t.Errorf("Count(nil) = %d, want 0", got)
	}
}

func TestFprint(t *testing.T) {
	var sb strings.Builder
	n := ast.Bin(token.ADD, ast.Const[R](1), ast.Fn(token.F_COS, ast.Var[R]("x")))
	if err := ast.Fprint(&sb, n); err != nil {
		t.Fatalf("Fprint() error = %v", err)
	}
	want := "Binary: +\n" +
		"    Number: 1\n" +
		"    Call: cos\n" +
		"        Variable: x\n"
	if sb.String() != want {
		t.Errorf("Fprint() =\n%s\nwant\n%s", sb.String(), want)
	}
}

func TestConstructorsRejectForeignTags(t *testing.T) {
	mustPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			r := recover()
			if _, ok := r.(*ast.InternalError); !ok {
				t.Errorf("%s: recovered %v, want *ast.InternalError", name, r)
			}
		}()
		f()
	}
	mustPanic("Bin", func() { ast.Bin(token.ASSIGN, ast.Const[R](1), ast.Const[R](2)) })
	mustPanic("Fn", func() { ast.Fn(token.ADD, ast.Const[R](1)) })
}
