package types

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestKindEqual(t *testing.T) {
	unary := Arrow{Lhs: Star{}, Rhs: Star{}}
	binary := Arrow{Lhs: Star{}, Rhs: Arrow{Lhs: Star{}, Rhs: Star{}}}

	testCases := []struct {
		name     string
		a, b     Kind
		expected bool
	}{
		{name: "star equals star", a: Star{}, b: Star{}, expected: true},
		{name: "star is not an arrow", a: Star{}, b: unary, expected: false},
		{name: "arrow is not star", a: unary, b: Star{}, expected: false},
		{name: "arrows compare structurally", a: unary, b: Arrow{Lhs: Star{}, Rhs: Star{}}, expected: true},
		{name: "arrows of different arity differ", a: unary, b: binary, expected: false},
		{name: "nested arrows compare recursively", a: binary, b: Arrow{Lhs: Star{}, Rhs: unary}, expected: true},
		{name: "left-nested differs from right-nested", a: Arrow{Lhs: unary, Rhs: Star{}}, b: binary, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Equal(tc.b))
		})
	}
}

func TestKindString(t *testing.T) {
	testCases := []struct {
		name     string
		kind     Kind
		expected string
	}{
		{name: "star", kind: Star{}, expected: "*"},
		{name: "unary constructor", kind: Arrow{Lhs: Star{}, Rhs: Star{}}, expected: "* -> *"},
		{
			name:     "binary constructor associates right",
			kind:     MakeArrow(Star{}, Star{}, Star{}),
			expected: "* -> * -> *",
		},
		{
			name:     "higher-order argument is parenthesized",
			kind:     Arrow{Lhs: Arrow{Lhs: Star{}, Rhs: Star{}}, Rhs: Star{}},
			expected: "(* -> *) -> *",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.kind.String())
		})
	}
}

func TestMakeArrow(t *testing.T) {
	t.Run("single kind is returned as-is", func(t *testing.T) {
		assert.Equal(t, Kind(Star{}), MakeArrow(Star{}))
	})
	t.Run("folds to the right", func(t *testing.T) {
		expected := Arrow{Lhs: Star{}, Rhs: Arrow{Lhs: Star{}, Rhs: Star{}}}
		assert.Equal(t, Kind(expected), MakeArrow(Star{}, Star{}, Star{}))
	})
	t.Run("no kinds panics", func(t *testing.T) {
		assert.Panics(t, func() { MakeArrow() })
	})
}
