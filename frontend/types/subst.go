package types

import (
	"github.com/mangekyou-lang/mangekyou/util"
	"slices"
	"strings"
)

// Subst is a finite mapping from type variables to the types they stand for.
// A nil or empty Subst is the identity. Substitutions produced by the
// unifier are idempotent: every right-hand side is already free of the
// mapping's own keys.
type Subst map[Var]Type

var _ util.Copyable[Subst] = Subst{}

// Bind constructs the one-entry substitution {v -> t}. A binding between
// kinds would break every invariant downstream, so kind agreement is checked
// here and nowhere later.
func Bind(v Var, t Type) (Subst, error) {
	if !v.Kind().Equal(t.Kind()) {
		return nil, &KindMismatchError{
			Left: v, Right: t,
			LeftKind: v.Kind(), RightKind: t.Kind(),
		}
	}
	return Subst{v: t}, nil
}

// Apply maps t through the substitution. Equivalent to t.Apply(s).
func (s Subst) Apply(t Type) Type {
	return t.Apply(s)
}

// ApplyAll maps each type through the substitution, preserving order.
func (s Subst) ApplyAll(ts []Type) []Type {
	applied := make([]Type, len(ts))
	for i, t := range ts {
		applied[i] = t.Apply(s)
	}
	return applied
}

// Compose returns the substitution equivalent to applying s first and then
// s2: for every type t, t.Apply(s.Compose(s2)) == t.Apply(s).Apply(s2).
// Bindings of s win on key collision, with their payloads mapped through s2
// so no binding of s2 is left unapplied.
func (s Subst) Compose(s2 Subst) Subst {
	composed := make(Subst, len(s)+len(s2))
	for v, t := range s2 {
		composed[v] = t
	}
	for v, t := range s {
		composed[v] = t.Apply(s2)
	}
	return composed
}

// Copy returns an independent shallow copy. The mapped types are immutable,
// so sharing them is safe.
func (s Subst) Copy() Subst {
	copied := make(Subst, len(s))
	for v, t := range s {
		copied[v] = t
	}
	return copied
}

// String renders the mapping sorted by variable name, so output is
// deterministic regardless of map iteration order.
func (s Subst) String() string {
	vars := make([]Var, 0, len(s))
	for v := range s {
		vars = append(vars, v)
	}
	slices.SortFunc(vars, func(a, b Var) int {
		return strings.Compare(string(a.Name), string(b.Name))
	})
	sb := &strings.Builder{}
	sb.WriteString("{")
	for i, v := range vars {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
		sb.WriteString(" => ")
		sb.WriteString(s[v].String())
	}
	sb.WriteString("}")
	return sb.String()
}
