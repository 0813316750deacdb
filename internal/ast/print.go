package ast

import (
	"fmt"
	"io"

	"github.com/kolkov/symexpr/internal/types"
)

// printer writes an indented tree dump of a node for debugging:
//
//	Binary: *
//	    Number: 3
//	    Call: sin
//	        Variable: x
type printer struct {
	w      io.Writer
	indent int
	err    error
}

// Fprint writes a tree dump of n to w.
func Fprint[T types.Scalar[T]](w io.Writer, n Node[T]) error {
	p := &printer{w: w}
	printNode(p, n)
	return p.err
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) writeIndent() {
	if p.err != nil {
		return
	}
	for i := 0; i < p.indent; i++ {
		_, p.err = io.WriteString(p.w, "    ")
	}
}

func printNode[T types.Scalar[T]](p *printer, n Node[T]) {
	p.writeIndent()
	switch n := n.(type) {
	case nil:
		p.printf("<nil>\n")
	case *Number[T]:
		p.printf("Number: %s\n", n.Value)
	case *Variable[T]:
		p.printf("Variable: %s\n", n.Name)
	case *Binary[T]:
		p.printf("Binary: %s\n", n.Op)
		p.indent++
		printNode(p, n.Left)
		printNode(p, n.Right)
		p.indent--
	case *Unary[T]:
		p.printf("Unary: %s\n", n.Op)
		p.indent++
		printNode(p, n.Operand)
		p.indent--
	case *Call[T]:
		p.printf("Call: %s\n", n.Func)
		p.indent++
		printNode(p, n.Arg)
		p.indent--
	default:
		p.printf("<%T>\n", n)
	}
}
