package types

import (
	"fmt"
)

// Kind classifies types the way types classify terms: Star is the kind of
// ordinary, fully applied types, and Arrow is the kind of a type constructor
// still waiting for an argument. Kinds are immutable values and may be
// shared freely.
//
// The sum is closed: Star and Arrow are the only kinds.
type Kind interface {
	fmt.Stringer
	// Equal reports structural equality with another kind.
	Equal(other Kind) bool
	kindNode()
}

var (
	_ Kind = Star{}
	_ Kind = Arrow{}
)

// Star is the kind of fully applied types, written "*".
type Star struct{}

func (Star) kindNode() {}

func (Star) Equal(other Kind) bool {
	_, ok := other.(Star)
	return ok
}

func (Star) String() string { return "*" }

// Arrow is the kind of a type constructor taking an argument of kind Lhs and
// yielding a type of kind Rhs.
type Arrow struct {
	Lhs Kind
	Rhs Kind
}

func (Arrow) kindNode() {}

func (a Arrow) Equal(other Kind) bool {
	b, ok := other.(Arrow)
	return ok && a.Lhs.Equal(b.Lhs) && a.Rhs.Equal(b.Rhs)
}

func (a Arrow) String() string {
	lhs := a.Lhs.String()
	if _, nested := a.Lhs.(Arrow); nested {
		lhs = "(" + lhs + ")"
	}
	return lhs + " -> " + a.Rhs.String()
}

// MakeArrow folds kinds into a right-associated arrow kind, so
// MakeArrow(Star{}, Star{}, Star{}) is the kind of a two-argument
// constructor. A single kind is returned as-is.
func MakeArrow(kinds ...Kind) Kind {
	if len(kinds) == 0 {
		panic("types: MakeArrow needs at least one kind")
	}
	result := kinds[len(kinds)-1]
	for i := len(kinds) - 2; i >= 0; i-- {
		result = Arrow{Lhs: kinds[i], Rhs: result}
	}
	return result
}
