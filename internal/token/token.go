// Package token defines lexical tokens for arithmetic expressions.
package token

import "strconv"

// Token represents a lexical token type.
type Token uint8

const (
	// Special tokens
	ILLEGAL Token = iota // <illegal>
	EOF                  // EOF

	// Operators and delimiters
	operatorStart
	ADD    // +
	SUB    // -
	MUL    // *
	DIV    // /
	POW    // ^
	ASSIGN // =
	LPAREN // (
	RPAREN // )
	operatorEnd

	// Built-in functions
	builtinStart
	F_COS // cos
	F_EXP // exp
	F_LN  // ln
	F_SIN // sin
	builtinEnd

	// Literals
	NAME   // name
	NUMBER // number
)

var names = [...]string{
	ILLEGAL: "<illegal>",
	EOF:     "EOF",
	ADD:     "+",
	SUB:     "-",
	MUL:     "*",
	DIV:     "/",
	POW:     "^",
	ASSIGN:  "=",
	LPAREN:  "(",
	RPAREN:  ")",
	F_COS:   "cos",
	F_EXP:   "exp",
	F_LN:    "ln",
	F_SIN:   "sin",
	NAME:    "name",
	NUMBER:  "number",
}

// String returns the source form of operators and builtins, or a
// descriptive name for the other tokens.
func (t Token) String() string {
	if int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// IsOperator returns true if the token is an operator or delimiter.
func (t Token) IsOperator() bool {
	return t > operatorStart && t < operatorEnd
}

// IsBuiltin returns true if the token is a built-in function.
func (t Token) IsBuiltin() bool {
	return t > builtinStart && t < builtinEnd
}

// IsBinary returns true for the operators a binary node may carry.
func (t Token) IsBinary() bool {
	switch t {
	case ADD, SUB, MUL, DIV, POW:
		return true
	}
	return false
}

// builtins maps built-in function names to their token types.
var builtins = map[string]Token{
	"cos": F_COS,
	"exp": F_EXP,
	"ln":  F_LN,
	"sin": F_SIN,
}

// LookupBuiltin returns the token type for a builtin function, or ILLEGAL if not found.
func LookupBuiltin(name string) Token {
	if tok, ok := builtins[name]; ok {
		return tok
	}
	return ILLEGAL
}
