package parser

import (
	"github.com/kolkov/symexpr/internal/lexer"
	"github.com/kolkov/symexpr/internal/token"
	"github.com/kolkov/symexpr/internal/types"
)

// ParseBindings parses a list of variable assignments:
//
//	bindings := (name '=' value)*
//	value    := (('+' | '-' | '*')* number)+
//
// A value is a signed sum of real and imaginary literals, so
// "x = -13I + 4 y = 2" binds x to 4-13i and y to 2. A sign applies to
// every following literal until the next sign; '*' is ignored. A value
// ends at the next name. Later bindings of the same name win.
func ParseBindings(src string, mode Mode) (map[string]complex128, error) {
	toks := lexer.Tokenize(src)
	strict := mode&StrictLiterals != 0
	bindings := make(map[string]complex128)

	i := 0
	for toks[i].Type != token.EOF {
		nameTok := toks[i]
		if nameTok.Type != token.NAME {
			return nil, expectedError(nameTok.Pos, "name", tokenDesc(nameTok))
		}
		i++
		if toks[i].Type != token.ASSIGN {
			return nil, expectedError(toks[i].Pos, "=", tokenDesc(toks[i]))
		}
		i++

		var (
			value    complex128
			negative bool
			terms    int
		)
	value:
		for {
			tok := toks[i]
			switch tok.Type {
			case token.ADD:
				negative = false
			case token.SUB:
				negative = true
			case token.MUL:
			case token.NUMBER:
				re, im, err := types.ParseLiteral(tok.Value, strict)
				if err != nil {
					return nil, &ParseError{Pos: tok.Pos, Message: err.Error(), Got: tok.Value, Err: err}
				}
				if negative {
					value -= complex(re, im)
				} else {
					value += complex(re, im)
				}
				terms++
			case token.NAME, token.EOF:
				break value
			default:
				return nil, errorf(tok.Pos, "unexpected %s in value of %s", tokenDesc(tok), nameTok.Value)
			}
			i++
		}
		if terms == 0 {
			return nil, errorf(nameTok.Pos, "missing value for %s", nameTok.Value)
		}
		bindings[nameTok.Value] = value
	}
	return bindings, nil
}
