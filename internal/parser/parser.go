package parser

import (
	"fmt"

	"github.com/kolkov/symexpr/internal/ast"
	"github.com/kolkov/symexpr/internal/lexer"
	"github.com/kolkov/symexpr/internal/token"
	"github.com/kolkov/symexpr/internal/types"
)

// Mode controls optional parser behaviour.
type Mode uint

const (
	// StrictLiterals rejects numeric literals with digits after the
	// imaginary unit, such as 3I5.
	StrictLiterals Mode = 1 << iota
)

// Parser is a recursive descent parser for expressions over the scalar
// domain T. Parsing stops at the first error.
type Parser[T types.Scalar[T]] struct {
	lexer *lexer.Lexer // Lexer instance
	tok   lexer.Token  // Current token
	mode  Mode
	err   *ParseError
}

// Parse parses an expression from source text.
//
// Grammar, lowest precedence first, every level left-associative:
//
//	expression := term (('+' | '-') term)*
//	term       := exponent (('*' | '/') exponent)*
//	exponent   := factor ('^' factor)*
//	factor     := '-' factor | '(' expression ')' | number
//	            | name '(' expression ')' | name
func Parse[T types.Scalar[T]](src string, mode Mode) (ast.Node[T], error) {
	p := &Parser[T]{
		lexer: lexer.NewFromString(src),
		mode:  mode,
	}
	return p.parse()
}

func (p *Parser[T]) parse() (node ast.Node[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			node, err = nil, p.err
		}
	}()

	p.next()
	if p.tok.Type == token.EOF {
		p.error(errorf(p.tok.Pos, "empty expression"))
	}
	node = p.parseExpr()
	if p.tok.Type != token.EOF {
		p.error(expectedError(p.tok.Pos, "end of input", tokenDesc(p.tok)))
	}
	return node, nil
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

// next advances to the next token.
func (p *Parser[T]) next() {
	p.tok = p.lexer.Scan()
}

// expect checks that the current token is tok and advances.
func (p *Parser[T]) expect(tok token.Token) {
	if p.tok.Type != tok {
		p.error(expectedError(p.tok.Pos, tok.String(), tokenDesc(p.tok)))
	}
	p.next()
}

// error records err and abandons the parse.
func (p *Parser[T]) error(err *ParseError) {
	p.err = err
	panic(bailout{})
}

// tokenDesc returns a description of tok for error messages.
func tokenDesc(tok lexer.Token) string {
	switch tok.Type {
	case token.EOF:
		return "end of input"
	case token.NAME:
		return fmt.Sprintf("name %q", tok.Value)
	case token.NUMBER:
		return fmt.Sprintf("number %q", tok.Value)
	case token.ILLEGAL:
		return fmt.Sprintf("character %q", tok.Value)
	default:
		return fmt.Sprintf("%q", tok.Type.String())
	}
}

// -----------------------------------------------------------------------------
// Expression parsing
// -----------------------------------------------------------------------------

// parseExpr parses a sum or difference of terms.
func (p *Parser[T]) parseExpr() ast.Node[T] {
	return p.parseBinaryLeft(p.parseTerm, token.ADD, token.SUB)
}

// parseTerm parses a product or quotient of powers.
func (p *Parser[T]) parseTerm() ast.Node[T] {
	return p.parseBinaryLeft(p.parseExponent, token.MUL, token.DIV)
}

// parseExponent parses a chain of powers. Like the other levels it groups
// to the left, so 2^3^2 is (2^3)^2.
func (p *Parser[T]) parseExponent() ast.Node[T] {
	return p.parseBinaryLeft(p.parseFactor, token.POW)
}

// parseBinaryLeft parses a left-associative chain of operands joined by
// any of ops.
func (p *Parser[T]) parseBinaryLeft(operand func() ast.Node[T], ops ...token.Token) ast.Node[T] {
	left := operand()
	for p.matches(ops) {
		pos := p.tok.Pos
		op := p.tok.Type
		p.next()
		right := operand()
		left = &ast.Binary[T]{
			BaseExpr: ast.MakeBaseExpr(pos),
			Op:       op,
			Left:     left,
			Right:    right,
		}
	}
	return left
}

func (p *Parser[T]) matches(ops []token.Token) bool {
	for _, op := range ops {
		if p.tok.Type == op {
			return true
		}
	}
	return false
}

// parseFactor parses a negation, parenthesized expression, literal, call
// or variable.
func (p *Parser[T]) parseFactor() ast.Node[T] {
	pos := p.tok.Pos

	switch p.tok.Type {
	case token.SUB:
		p.next()
		return &ast.Unary[T]{
			BaseExpr: ast.MakeBaseExpr(pos),
			Op:       token.SUB,
			Operand:  p.parseFactor(),
		}

	case token.LPAREN:
		p.next()
		expr := p.parseExpr()
		p.expect(token.RPAREN)
		return expr

	case token.NUMBER:
		return p.parseNumber()

	case token.NAME:
		name := p.tok.Value
		p.next()
		if p.tok.Type != token.LPAREN {
			return &ast.Variable[T]{BaseExpr: ast.MakeBaseExpr(pos), Name: name}
		}
		fn := token.LookupBuiltin(name)
		if fn == token.ILLEGAL {
			p.error(errorf(pos, "unknown function %q", name))
		}
		p.next()
		arg := p.parseExpr()
		p.expect(token.RPAREN)
		return &ast.Call[T]{BaseExpr: ast.MakeBaseExpr(pos), Func: fn, Arg: arg}

	case token.EOF:
		p.error(errorf(pos, "unexpected end of input"))

	default:
		p.error(errorf(pos, "unexpected %s", tokenDesc(p.tok)))
	}
	return nil
}

// parseNumber converts the current numeric-literal token into a scalar.
func (p *Parser[T]) parseNumber() ast.Node[T] {
	pos := p.tok.Pos
	v, err := types.Literal[T](p.tok.Value, p.mode&StrictLiterals != 0)
	if err != nil {
		p.error(&ParseError{Pos: pos, Message: err.Error(), Got: p.tok.Value, Err: err})
	}
	p.next()
	return &ast.Number[T]{BaseExpr: ast.MakeBaseExpr(pos), Value: v}
}
