package types

import (
	"fmt"
)

// Unification failures come in exactly three recoverable forms. Each carries
// the offending values so callers can report them against source positions
// this package never sees. Anything else that goes wrong in here is a
// contract violation and panics instead.

// TypeMismatchError reports two types with incompatible shapes or two
// distinct constructors.
type TypeMismatchError struct {
	Left  Type
	Right Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cannot unify %s with %s", e.Left, e.Right)
}

// KindMismatchError reports a variable binding or an application whose two
// sides disagree in kind.
type KindMismatchError struct {
	Left      Type
	Right     Type
	LeftKind  Kind
	RightKind Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("kind mismatch: %s has kind %s but %s has kind %s",
		e.Left, e.LeftKind, e.Right, e.RightKind)
}

// OccursError reports a variable that would have to contain itself.
type OccursError struct {
	Var Var
	In  Type
}

func (e *OccursError) Error() string {
	return fmt.Sprintf("occurs check: cannot construct the infinite type %s ~ %s", e.Var, e.In)
}
