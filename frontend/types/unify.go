package types

import (
	"fmt"
)

// Unify computes the most general unifier of t1 and t2, extending the
// substitution accumulated so far. On success the returned substitution
// makes the two types equal: t1.Apply(result) == t2.Apply(result). On
// failure it returns one of TypeMismatchError, KindMismatchError or
// OccursError, and s is unchanged either way.
//
// Gen placeholders must never reach the unifier: instantiate the enclosing
// scheme first. A Gen operand is a driver bug and panics.
func Unify(t1, t2 Type, s Subst) (Subst, error) {
	a, b := t1.Apply(s), t2.Apply(s)
	switch at := a.(type) {
	case Var:
		return bindVar(at, b, s)
	case Con:
		switch bt := b.(type) {
		case Var:
			return bindVar(bt, a, s)
		case Con:
			if at.Name == bt.Name {
				return s, nil
			}
			return nil, &TypeMismatchError{Left: a, Right: b}
		case App:
			return nil, &TypeMismatchError{Left: a, Right: b}
		case Gen:
			panic(genOperand(bt))
		default:
			panic(fmt.Sprintf("types: unhandled type form %T", b))
		}
	case App:
		switch bt := b.(type) {
		case Var:
			return bindVar(bt, a, s)
		case App:
			// the function side first: bindings learned there must be
			// visible when the argument sides are compared
			s1, err := Unify(at.Fn, bt.Fn, s)
			if err != nil {
				return nil, err
			}
			return Unify(at.Arg, bt.Arg, s1)
		case Con:
			return nil, &TypeMismatchError{Left: a, Right: b}
		case Gen:
			panic(genOperand(bt))
		default:
			panic(fmt.Sprintf("types: unhandled type form %T", b))
		}
	case Gen:
		panic(genOperand(at))
	default:
		panic(fmt.Sprintf("types: unhandled type form %T", a))
	}
}

// bindVar extends s with {v -> t}, unless the binding would be vacuous,
// self-referential or ill-kinded. The occurs check runs before the kind
// check: an infinite type is the more fundamental failure.
func bindVar(v Var, t Type, s Subst) (Subst, error) {
	if tv, ok := t.(Var); ok && tv == v {
		return s, nil
	}
	if occursIn(v, t) {
		return nil, &OccursError{Var: v, In: t}
	}
	single, err := Bind(v, t)
	if err != nil {
		return nil, err
	}
	return s.Compose(single), nil
}

// occursIn reports whether v appears anywhere within t.
func occursIn(v Var, t Type) bool {
	switch t := t.(type) {
	case Var:
		return t == v
	case Con:
		return false
	case App:
		return occursIn(v, t.Fn) || occursIn(v, t.Arg)
	case Gen:
		panic(genOperand(t))
	default:
		panic(fmt.Sprintf("types: unhandled type form %T", t))
	}
}

func genOperand(g Gen) string {
	return fmt.Sprintf("types: generic placeholder %s reached the unifier; schemes must be instantiated first", g)
}
