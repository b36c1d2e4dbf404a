package ast

import (
	"fmt"
	"strings"
)

// Prototype declares a function's name and parameter names. The language has
// no type annotations, so a prototype carries arity and nothing else.
type Prototype struct {
	At     Pos
	Name   string
	Params []string
}

func (p *Prototype) Pos() Pos { return p.At }

func (p *Prototype) String() string {
	return fmt.Sprintf("%s(%s)", p.Name, strings.Join(p.Params, ", "))
}

// Func is a function declaration: a prototype plus a body expression.
type Func struct {
	Proto Prototype
	Body  Expr
}

func (f *Func) Pos() Pos { return f.Proto.At }

func (f *Func) String() string {
	return fmt.Sprintf("fn %s %s", &f.Proto, f.Body)
}

// Program is everything the parser produced for one compilation unit:
// extern prototypes first, then function declarations, both in source order.
type Program struct {
	Externs []Prototype
	Funcs   []Func
}

func (p *Program) String() string {
	sb := &strings.Builder{}
	for i := range p.Externs {
		fmt.Fprintf(sb, "extern %s\n", &p.Externs[i])
	}
	for i := range p.Funcs {
		fmt.Fprintf(sb, "%s\n", &p.Funcs[i])
	}
	return sb.String()
}
