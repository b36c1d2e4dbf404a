package types

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestBind(t *testing.T) {
	a := Var{Name: "a", K: Star{}}
	f := Var{Name: "f", K: Arrow{Lhs: Star{}, Rhs: Star{}}}

	t.Run("binding within a kind", func(t *testing.T) {
		s, err := Bind(a, Int)
		assert.NoError(t, err)
		assert.Equal(t, Subst{a: Int}, s)
	})
	t.Run("binding across kinds is rejected", func(t *testing.T) {
		_, err := Bind(f, Int)
		var kindErr *KindMismatchError
		assert.ErrorAs(t, err, &kindErr)
	})
}

func TestSubstIdentity(t *testing.T) {
	a := Var{Name: "a", K: Star{}}
	for _, typ := range []Type{a, Int, ListOf(a), Fn(a, Bool), Gen{Index: 0}} {
		assert.Equal(t, typ, typ.Apply(Subst{}), "empty substitution must not rewrite %s", typ)
		assert.Equal(t, typ, typ.Apply(nil), "nil substitution must not rewrite %s", typ)
	}
}

// Compose obeys t.Apply(s1.Compose(s2)) == t.Apply(s1).Apply(s2) for every t.
func TestSubstCompose(t *testing.T) {
	a := Var{Name: "a", K: Star{}}
	b := Var{Name: "b", K: Star{}}
	c := Var{Name: "c", K: Star{}}

	testCases := []struct {
		name   string
		s1, s2 Subst
	}{
		{name: "disjoint mappings", s1: Subst{a: Int}, s2: Subst{b: Bool}},
		{name: "second resolves the first's payload", s1: Subst{a: ListOf(b)}, s2: Subst{b: Int}},
		{name: "collision resolves to the first", s1: Subst{a: Int}, s2: Subst{a: Bool}},
		{name: "chain through a third variable", s1: Subst{a: b}, s2: Subst{b: c, c: Int}},
		{name: "empty first", s1: Subst{}, s2: Subst{a: Int}},
		{name: "empty second", s1: Subst{a: Int}, s2: Subst{}},
	}

	probes := []Type{a, b, c, Fn(a, b, c), ListOf(ListOf(a))}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			composed := tc.s1.Compose(tc.s2)
			for _, probe := range probes {
				assert.Equal(t, probe.Apply(tc.s1).Apply(tc.s2), probe.Apply(composed),
					"composition law broken for probe %s", probe)
			}
		})
	}
}

func TestSubstComposeKeepsFirstBindingResolved(t *testing.T) {
	a := Var{Name: "a", K: Star{}}
	b := Var{Name: "b", K: Star{}}

	composed := Subst{a: ListOf(b)}.Compose(Subst{b: Int})
	assert.Equal(t, Type(ListOf(Int)), composed[a],
		"the first mapping's payload must be rewritten by the second")
	assert.Equal(t, Type(Int), composed[b])
}

func TestSubstApplyAll(t *testing.T) {
	a := Var{Name: "a", K: Star{}}
	b := Var{Name: "b", K: Star{}}
	s := Subst{a: Int}

	assert.Equal(t, []Type{Int, b, ListOf(Int)}, s.ApplyAll([]Type{a, b, ListOf(a)}))
}

func TestSubstCopyIsIndependent(t *testing.T) {
	a := Var{Name: "a", K: Star{}}
	b := Var{Name: "b", K: Star{}}

	original := Subst{a: Int}
	copied := original.Copy()
	copied[b] = Bool

	assert.Len(t, original, 1, "writing to the copy must not extend the original")
	assert.Equal(t, Type(Bool), copied[b])
}

func TestSubstString(t *testing.T) {
	a := Var{Name: "a", K: Star{}}
	b := Var{Name: "b", K: Star{}}

	testCases := []struct {
		name     string
		s        Subst
		expected string
	}{
		{name: "empty", s: Subst{}, expected: "{}"},
		{name: "single binding", s: Subst{a: Int}, expected: "{a => Int}"},
		{
			name:     "bindings sort by variable name",
			s:        Subst{b: Bool, a: ListOf(Int)},
			expected: "{a => List Int, b => Bool}",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.s.String())
		})
	}
}
