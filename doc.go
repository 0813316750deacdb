// Package symexpr parses arithmetic expressions and evaluates,
// differentiates and substitutes into them symbolically.
//
// Expressions are generic over a numeric domain: [Real] or [Complex].
// Both domains share one grammar:
//
//	expression := term (('+' | '-') term)*
//	term       := exponent (('*' | '/') exponent)*
//	exponent   := factor ('^' factor)*
//	factor     := '-' factor | '(' expression ')' | number
//	            | name '(' expression ')' | name
//
// All binary operators group to the left, so 2^3^2 is (2^3)^2. Names are
// case-insensitive. The functions are sin, cos, ln and exp. A number
// directly followed by a name multiplies it: 6x is 6*x. The imaginary
// unit I is part of numeric literals (I, 3I, 12.5I) and cannot start a
// variable name.
//
// # Quick Start
//
//	e, err := symexpr.Parse[symexpr.Real]("x^2 + sin(x)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d := e.Differentiate("x")
//	if err := d.SubsVar("x = 3"); err != nil {
//	    log.Fatal(err)
//	}
//	v, err := d.Evaluate()
//
// # Building Expressions
//
// Expressions combine with [Expression.Add], [Expression.Sub],
// [Expression.Mul], [Expression.Div] and [Expression.Pow]. Operands are
// deep-copied, so the result shares nothing with them:
//
//	a := symexpr.MustParse[symexpr.Complex]("14ln(4y+1)")
//	b := symexpr.MustParse[symexpr.Complex]("exp(y*x^2)")
//	q := a.Div(b)
//
// # Serialization
//
// [Expression.String] wraps every composite node in parentheses, so the
// output does not depend on precedence and parses back to the same tree:
// x^2 + 1 is "((x^2) + 1)".
//
// # Error Handling
//
// Errors are returned as specific types for detailed handling:
//   - [SyntaxError]: malformed expression or substitution text
//   - [DomainError]: division by zero, ln of zero, and for [Real] also ln
//     of a negative number and even roots of negative numbers
//   - [UnboundVariableError]: evaluation of a variable without a value
//
// An [InternalError] panic means a tree node outside the grammar and is a
// bug in this package.
package symexpr
