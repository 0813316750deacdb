package ast

import (
	"testing"

	"github.com/kolkov/symexpr/internal/token"
	"github.com/kolkov/symexpr/internal/types"
)

// bogus is a node variant outside the closed set.
type bogus struct{ BaseExpr }

func (*bogus) exprNode(types.Real) {}

func TestUnknownNodePanics(t *testing.T) {
	tests := []struct {
		name string
		run  func()
	}{
		{"clone", func() { Clone[types.Real](&bogus{}) }},
		{"serialize", func() { String[types.Real](&bogus{}) }},
		{"nested", func() { String(Bin[types.Real](token.ADD, &bogus{}, Const[types.Real](1))) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				err, ok := recover().(*InternalError)
				if !ok {
					t.Fatal("expected *InternalError panic")
				}
				if err.Where != tt.name && !(tt.name == "nested" && err.Where == "serialize") {
					t.Errorf("Where = %q", err.Where)
				}
			}()
			tt.run()
		})
	}
}
