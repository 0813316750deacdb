package deriv_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/kolkov/symexpr/internal/ast"
	"github.com/kolkov/symexpr/internal/deriv"
	"github.com/kolkov/symexpr/internal/eval"
	"github.com/kolkov/symexpr/internal/parser"
	"github.com/kolkov/symexpr/internal/subst"
	"github.com/kolkov/symexpr/internal/token"
	"github.com/kolkov/symexpr/internal/types"
)

type (
	R = types.Real
	C = types.Complex
)

func mustParse[T types.Scalar[T]](t *testing.T, src string) ast.Node[T] {
	t.Helper()
	n, err := parser.Parse[T](src, 0)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", src, err)
	}
	return n
}

// at evaluates a copy of n with the given bindings.
func at[T types.Scalar[T]](t *testing.T, n ast.Node[T], bindings map[string]complex128) T {
	t.Helper()
	v, err := eval.Evaluate(subst.Substitute(ast.Clone(n), bindings))
	if err != nil {
		t.Fatalf("Evaluate(%s) error = %v", ast.String(n), err)
	}
	return v
}

func TestDifferentiateRules(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"5", "0"},
		{"x", "1"},
		{"y", "0"},
		{"x + y", "(1 + 0)"},
		{"x - 3", "(1 - 0)"},
		{"x * y", "((1 * y) + (x * 0))"},
		{"x / y", "(((1 * y) - (x * 0)) / (y^2))"},
		{"x^2", "((x^2) * ((0 * ln(x)) + (2 * (1 / x))))"},
		{"-x", "(-1)"},
		{"sin(x)", "(cos(x) * 1)"},
		{"cos(x)", "((-1 * sin(x)) * 1)"},
		{"ln(x)", "(1 / x)"},
		{"exp(2x)", "(exp((2 * x)) * ((0 * x) + (2 * 1)))"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := deriv.Differentiate(mustParse[R](t, tt.src), "x")
			if s := ast.String(got); s != tt.want {
				t.Errorf("Differentiate(%q) = %q, want %q", tt.src, s, tt.want)
			}
		})
	}
}

func TestDerivativeOfSquareAtThree(t *testing.T) {
	d := deriv.Differentiate(mustParse[R](t, "x^2"), "x")
	got := at(t, d, map[string]complex128{"x": 3})
	if math.Abs(float64(got)-6) > 1e-12 {
		t.Errorf("d/dx x^2 at 3 = %v, want 6", got)
	}
}

// TestDifferentiateNumerically compares derivatives against central
// finite differences.
func TestDifferentiateNumerically(t *testing.T) {
	srcs := []string{
		"x^3",
		"sin(x) * cos(x)",
		"exp(x^2) / x",
		"ln(x^2 + 1)",
		"x^x",
		"2^x",
		"-cos(3x)",
		"(x + 1) / (x - 1)",
		"exp(sin(x)) - 4x",
	}
	points := []float64{0.7, 1.3, 2.1}
	const h = 1e-6

	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			f := mustParse[R](t, src)
			d := deriv.Differentiate(f, "x")
			for _, x := range points {
				got := float64(at(t, d, map[string]complex128{"x": complex(x, 0)}))
				hi := float64(at(t, f, map[string]complex128{"x": complex(x+h, 0)}))
				lo := float64(at(t, f, map[string]complex128{"x": complex(x-h, 0)}))
				want := (hi - lo) / (2 * h)
				if math.Abs(got-want) > 1e-5*math.Max(1, math.Abs(want)) {
					t.Errorf("at x=%v: derivative = %v, finite difference = %v", x, got, want)
				}
			}
		})
	}
}

func TestDifferentiateComplex(t *testing.T) {
	d := deriv.Differentiate(mustParse[C](t, "x^2 + I x"), "x")
	got := at(t, d, map[string]complex128{"x": 1 + 1i})
	if want := complex(2, 3); cmplx.Abs(complex128(got)-want) > 1e-12 {
		t.Errorf("derivative at 1+i = %v, want %v", got, want)
	}
}

func TestDifferentiateLinearity(t *testing.T) {
	fs := "sin(x) * y"
	gs := "x^3 / exp(y)"
	bindings := map[string]complex128{"x": 0.4, "y": 1.7}

	f := mustParse[R](t, fs)
	g := mustParse[R](t, gs)
	sum := ast.Bin(token.ADD, ast.Clone(f), ast.Clone(g))

	whole := at(t, deriv.Differentiate(sum, "x"), bindings)
	parts := at(t, ast.Bin(token.ADD, deriv.Differentiate(f, "x"), deriv.Differentiate(g, "x")), bindings)
	if whole != parts {
		t.Errorf("d(f+g) = %v, df+dg = %v", whole, parts)
	}
}

func TestDifferentiateOtherVariable(t *testing.T) {
	f := mustParse[R](t, "x^2 * y + sin(x)")
	d := deriv.Differentiate(f, "y")
	got := at(t, d, map[string]complex128{"x": 1.5, "y": 4})
	if math.Abs(float64(got)-2.25) > 1e-12 {
		t.Errorf("d/dy = %v, want 2.25", got)
	}
}

func TestDifferentiateDoesNotShare(t *testing.T) {
	f := mustParse[R](t, "(x * sin(x)) / (x^2 + ln(x))")
	before := ast.String(f)
	d := deriv.Differentiate(f, "x")

	if after := ast.String(f); after != before {
		t.Errorf("input changed: %q -> %q", before, after)
	}

	input := make(map[ast.Node[R]]bool)
	ast.Walk(f, func(n ast.Node[R]) bool {
		input[n] = true
		return true
	})
	output := make(map[ast.Node[R]]bool)
	ast.Walk(d, func(n ast.Node[R]) bool {
		if input[n] {
			t.Errorf("output shares node %s with the input", ast.String(n))
		}
		if output[n] {
			t.Errorf("output contains node %s twice", ast.String(n))
		}
		output[n] = true
		return true
	})
}

func TestDifferentiateUnknownFunctionPanics(t *testing.T) {
	defer func() {
		if _, ok := recover().(*ast.InternalError); !ok {
			t.Error("expected *ast.InternalError panic")
		}
	}()
	deriv.Differentiate[R](&ast.Call[R]{Func: token.NAME, Arg: ast.Var[R]("x")}, "x")
}
