package ast

import (
	"fmt"
)

// Pos is a source position assigned by whatever parser produced the tree.
// The zero Pos means the position is unknown, which is always legal:
// nothing in type checking depends on positions, they only travel along
// so errors can point somewhere.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) Known() bool { return p.Line > 0 }

// Pos returns the position itself, so a bare Pos satisfies Positioner.
func (p Pos) Pos() Pos { return p }

func (p Pos) String() string {
	if !p.Known() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Positioner is anything that can report where in the source it came from.
type Positioner interface {
	Pos() Pos
}

// Node is the base interface for all AST nodes.
type Node interface {
	Positioner
	fmt.Stringer
}

// Expr is the interface for all expression nodes in the AST.
type Expr interface {
	Node
	exprNode() // Marker method to distinguish expressions
}
