// Package lexer provides tokenization of arithmetic expressions.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/kolkov/symexpr/internal/token"
)

// Lexer tokenizes expression source text.
type Lexer struct {
	src     []byte         // Source text
	ch      byte           // Current character (0 at EOF)
	offset  int            // Offset of the next character
	pos     token.Position // Position of ch
	nextPos token.Position // Position of next character
	eof     bool           // Source exhausted

	lastTok token.Token // Previous token (for implicit multiplication)
}

// New creates a new Lexer for the given source text.
func New(src []byte) *Lexer {
	l := &Lexer{
		src: src,
		nextPos: token.Position{
			Line:   1,
			Column: 1,
		},
		lastTok: token.ILLEGAL,
	}
	l.next() // Initialize first character
	return l
}

// NewFromString creates a new Lexer from a string.
func NewFromString(src string) *Lexer {
	return New([]byte(src))
}

// Token represents a scanned token with its position and value.
type Token struct {
	Type  token.Token
	Pos   token.Position
	Value string
}

// Implicit reports whether the token was synthesized by the lexer rather
// than read from the source (the multiplication in "6x").
func (t Token) Implicit() bool {
	return t.Type == token.MUL && t.Value == ""
}

// Scan scans and returns the next token.
func (l *Lexer) Scan() Token {
	tok := l.scan()
	l.lastTok = tok.Type
	return tok
}

// Tokenize scans src eagerly. The returned slice always ends with an EOF token.
func Tokenize(src string) []Token {
	l := NewFromString(src)
	var toks []Token
	for {
		tok := l.Scan()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func (l *Lexer) scan() Token {
	l.skipWhitespace()

	pos := l.pos

	if l.eof {
		return Token{Type: token.EOF, Pos: pos}
	}

	switch l.ch {
	case '+':
		l.next()
		return Token{Type: token.ADD, Pos: pos, Value: "+"}
	case '-':
		l.next()
		return Token{Type: token.SUB, Pos: pos, Value: "-"}
	case '*':
		l.next()
		return Token{Type: token.MUL, Pos: pos, Value: "*"}
	case '/':
		l.next()
		return Token{Type: token.DIV, Pos: pos, Value: "/"}
	case '^':
		l.next()
		return Token{Type: token.POW, Pos: pos, Value: "^"}
	case '=':
		l.next()
		return Token{Type: token.ASSIGN, Pos: pos, Value: "="}
	case '(':
		l.next()
		return Token{Type: token.LPAREN, Pos: pos, Value: "("}
	case ')':
		l.next()
		return Token{Type: token.RPAREN, Pos: pos, Value: ")"}
	}

	if isNumberChar(l.ch) {
		return l.scanNumber(pos)
	}
	if isIdentStart(l.ch) {
		// A name right after a number multiplies it: 6x, 14ln(y).
		// Nothing is consumed, so the name is scanned on the next call.
		if l.lastTok == token.NUMBER {
			return Token{Type: token.MUL, Pos: pos}
		}
		return l.scanIdent(pos)
	}

	if l.ch >= utf8.RuneSelf {
		r, size := utf8.DecodeRune(l.src[pos.Offset:])
		for i := 0; i < size; i++ {
			l.next()
		}
		return Token{Type: token.ILLEGAL, Pos: pos, Value: string(r)}
	}
	ch := l.ch
	l.next()
	return Token{Type: token.ILLEGAL, Pos: pos, Value: string(ch)}
}

// scanNumber scans a run of digits, dots and imaginary units. The run is
// validated when the parser converts it to a scalar.
func (l *Lexer) scanNumber(pos token.Position) Token {
	start := pos.Offset
	for isNumberChar(l.ch) {
		l.next()
	}
	return Token{Type: token.NUMBER, Pos: pos, Value: string(l.src[start:l.pos.Offset])}
}

func (l *Lexer) scanIdent(pos token.Position) Token {
	start := pos.Offset
	for isIdentContinue(l.ch) {
		l.next()
	}
	name := strings.ToLower(string(l.src[start:l.pos.Offset]))
	return Token{Type: token.NAME, Pos: pos, Value: name}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' || l.ch == '\v' || l.ch == '\f' {
		l.next()
	}
}

func (l *Lexer) next() {
	l.pos = l.nextPos
	if l.offset >= len(l.src) {
		l.ch = 0
		l.eof = true
		return
	}

	l.ch = l.src[l.offset]
	l.offset++
	l.nextPos.Column++
	l.nextPos.Offset = l.offset

	if l.ch == '\n' {
		l.nextPos.Line++
		l.nextPos.Column = 1
	}
}

// Helper functions

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isNumberChar reports whether ch belongs to a numeric literal. The
// imaginary unit I is always numeric, never part of a name start.
func isNumberChar(ch byte) bool {
	return isDigit(ch) || ch == '.' || ch == 'I'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentStart(ch byte) bool {
	return isLetter(ch) && ch != 'I'
}

func isIdentContinue(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}
