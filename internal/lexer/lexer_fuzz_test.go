package lexer

import (
	"testing"

	"github.com/kolkov/symexpr/internal/token"
)

// FuzzLexer tests that the lexer handles arbitrary input without panicking
// and always terminates with EOF.
func FuzzLexer(f *testing.F) {
	seeds := []string{
		"x + y * z",
		"-6x^2 -4x^x + 000010 + sin(y) * exp((-12I + 0003) * x)",
		"x = -0013.000I + 4 y = -12 - 123I",
		"I003.00t = 11",
		"3I5",
		"((((",
		"",
		"\x00",
		"привет",
		"1.2.3.4",
	}

	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		l := New(data)

		const maxTokens = 10000
		for i := 0; i < maxTokens; i++ {
			tok := l.Scan()

			if tok.Pos.Offset < 0 || tok.Pos.Offset > len(data) {
				t.Fatalf("invalid position: %v", tok.Pos)
			}
			if tok.Type == token.EOF {
				return
			}
		}
		if len(data) < maxTokens/2 {
			t.Errorf("lexer did not reach EOF for %d bytes", len(data))
		}
	})
}
