// Package types defines the numeric domains an expression is built over.
//
// Two domains are provided: Real (float64) and Complex (complex128). Both
// satisfy Scalar, the capability the parser, evaluator, differentiator and
// substitution walk are written against. Domain-specific validity rules
// live in the methods themselves: Real.Pow rejects even roots of negative
// numbers and Real.Log rejects negative arguments, while Complex accepts
// both through the principal branch.
package types

import (
	"errors"
	"math"
	"math/cmplx"
	"strconv"

	"github.com/shopspring/decimal"
)

// Scalar is the field-like capability of a numeric domain. T is the
// implementing type itself.
type Scalar[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	Pow(T) (T, error)
	Sin() T
	Cos() T
	Exp() T
	Log() (T, error)

	// IsZero reports whether the value is exactly zero.
	IsZero() bool
	// Parts splits the value into real and imaginary components.
	Parts() (re, im float64)
	// FromParts builds a value of the receiver's domain. The receiver is
	// ignored; domains without an imaginary axis drop im.
	FromParts(re, im float64) T
	// String renders the value in literal syntax.
	String() string
}

// Domain errors reported by scalar operations.
var (
	ErrEvenRoot  = errors.New("even root of a negative number")
	ErrLogDomain = errors.New("logarithm of a negative number")
)

// Zero returns the zero value of domain T.
func Zero[T Scalar[T]]() T {
	var z T
	return z.FromParts(0, 0)
}

// Of returns the real number v in domain T.
func Of[T Scalar[T]](v float64) T {
	var z T
	return z.FromParts(v, 0)
}

// -----------------------------------------------------------------------------
// Real
// -----------------------------------------------------------------------------

// Real is a real scalar.
type Real float64

func (a Real) Add(b Real) Real { return a + b }
func (a Real) Sub(b Real) Real { return a - b }
func (a Real) Mul(b Real) Real { return a * b }
func (a Real) Div(b Real) Real { return a / b }
func (a Real) Neg() Real       { return -a }
func (a Real) Sin() Real       { return Real(math.Sin(float64(a))) }
func (a Real) Cos() Real       { return Real(math.Cos(float64(a))) }
func (a Real) Exp() Real       { return Real(math.Exp(float64(a))) }
func (a Real) IsZero() bool    { return a == 0 }

// Pow returns a^b. A negative base raised to the reciprocal of an even
// integer (a square root, a fourth root, ...) is an error.
func (a Real) Pow(b Real) (Real, error) {
	if a < 0 && isEvenRoot(float64(b)) {
		return 0, ErrEvenRoot
	}
	return Real(math.Pow(float64(a), float64(b))), nil
}

// Log returns the natural logarithm of a.
func (a Real) Log() (Real, error) {
	if a < 0 {
		return 0, ErrLogDomain
	}
	return Real(math.Log(float64(a))), nil
}

func (a Real) Parts() (re, im float64)    { return float64(a), 0 }
func (Real) FromParts(re, _ float64) Real { return Real(re) }
func (a Real) String() string             { return formatFloat(float64(a)) }

// isEvenRoot reports whether e is 1/n for an even integer n.
func isEvenRoot(e float64) bool {
	e = math.Abs(e)
	if e == 0 || e >= 1 {
		return false
	}
	n := 1 / e
	if math.IsInf(n, 0) || n != math.Trunc(n) {
		return false
	}
	return math.Mod(n, 2) == 0
}

// -----------------------------------------------------------------------------
// Complex
// -----------------------------------------------------------------------------

// Complex is a complex scalar.
type Complex complex128

func (a Complex) Add(b Complex) Complex { return a + b }
func (a Complex) Sub(b Complex) Complex { return a - b }
func (a Complex) Mul(b Complex) Complex { return a * b }
func (a Complex) Div(b Complex) Complex { return a / b }
func (a Complex) Sin() Complex          { return Complex(cmplx.Sin(complex128(a))) }
func (a Complex) Cos() Complex          { return Complex(cmplx.Cos(complex128(a))) }
func (a Complex) Exp() Complex          { return Complex(cmplx.Exp(complex128(a))) }
func (a Complex) IsZero() bool          { return a == 0 }

// Neg returns -a. Subtracting from zero keeps a zero imaginary part
// positive, so ln(-1) is iπ rather than -iπ.
func (a Complex) Neg() Complex { return 0 - a }

// Pow returns the principal value of a^b.
func (a Complex) Pow(b Complex) (Complex, error) {
	return Complex(cmplx.Pow(complex128(a), complex128(b))), nil
}

// Log returns the principal natural logarithm of a. Negative reals are
// accepted: Log(-1) is iπ.
func (a Complex) Log() (Complex, error) {
	return Complex(cmplx.Log(complex128(a))), nil
}

func (a Complex) Parts() (re, im float64) { return real(a), imag(a) }

func (Complex) FromParts(re, im float64) Complex { return Complex(complex(re, im)) }

// String renders a as <re>+<im>I, dropping a zero component. Zero
// renders as "0".
func (a Complex) String() string {
	re, im := real(a), imag(a)
	switch {
	case re == 0 && im == 0:
		return "0"
	case im == 0:
		return formatFloat(re)
	case re == 0:
		return formatFloat(im) + "I"
	case im < 0:
		return formatFloat(re) + "-" + formatFloat(-im) + "I"
	default:
		return formatFloat(re) + "+" + formatFloat(im) + "I"
	}
}

// formatFloat renders f as a plain decimal without exponent, leading
// zeros or trailing fractional zeros.
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return decimal.NewFromFloat(f).String()
}

// Compile-time checks.
var (
	_ Scalar[Real]    = Real(0)
	_ Scalar[Complex] = Complex(0)
)
