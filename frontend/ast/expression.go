package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// All expression types implement the Expr interface

// Number is a numeric literal. The language is double-valued, so there is a
// single numeric form.
type Number struct {
	At    Pos
	Value float64
}

func (e *Number) exprNode() {}

func (e *Number) Pos() Pos { return e.At }

func (e *Number) String() string {
	return strconv.FormatFloat(e.Value, 'g', -1, 64)
}

// Variable is a reference to a name bound by a let, a parameter, or a
// top-level declaration.
type Variable struct {
	At   Pos
	Name string
}

func (e *Variable) exprNode() {}

func (e *Variable) Pos() Pos { return e.At }

func (e *Variable) String() string { return e.Name }

// Binary applies an infix operator to two operands. Operators are ordinary
// names as far as typing is concerned, so this is just application with
// nicer syntax.
type Binary struct {
	At  Pos
	Op  string
	Lhs Expr
	Rhs Expr
}

func (e *Binary) exprNode() {}

func (e *Binary) Pos() Pos { return e.At }

func (e *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Lhs, e.Op, e.Rhs)
}

// Call applies a named function to arguments. The callee is a name, not an
// expression: the surface syntax has no anonymous functions to call.
type Call struct {
	At     Pos
	Callee string
	Args   []Expr
}

func (e *Call) exprNode() {}

func (e *Call) Pos() Pos { return e.At }

func (e *Call) String() string {
	args := make([]string, len(e.Args))
	for i, arg := range e.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", e.Callee, strings.Join(args, ", "))
}

// Let binds a name to a value within a body expression. Let-bound names are
// generalized, so this is the construct that introduces polymorphism inside
// a function body.
type Let struct {
	At   Pos
	Name string
	Init Expr
	Body Expr
}

func (e *Let) exprNode() {}

func (e *Let) Pos() Pos { return e.At }

func (e *Let) String() string {
	return fmt.Sprintf("(let %s = %s in %s)", e.Name, e.Init, e.Body)
}
