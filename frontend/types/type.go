package types

import (
	"fmt"
	"github.com/mangekyou-lang/mangekyou/util"
)

// Ident names type variables and type constructors. It is an opaque value:
// the type system never inspects the text beyond comparing it.
type Ident string

// Type is the closed sum of type forms: Var, Con, App and Gen.
//
// Values are immutable trees. Substitution application and every other
// "update" returns a fresh value, so subtrees may be shared without copying.
// All four forms are comparable, which keeps whole types usable as map keys
// and makes == coincide with structural equality.
type Type interface {
	fmt.Stringer
	// Kind reports the kind of this type. Calling it on a Gen, or on an App
	// whose left side is not of arrow kind, is a contract violation and
	// panics: such values cannot be built through the checked constructors.
	Kind() Kind
	// Apply replaces every variable bound by s, recursively. Types not
	// mentioning any key of s are returned unchanged.
	Apply(s Subst) Type
	typeNode()
}

var (
	_ Type = Var{}
	_ Type = Con{}
	_ Type = App{}
	_ Type = Gen{}
)

// Var is a type variable: a placeholder that unification may bind.
type Var struct {
	Name Ident
	K    Kind
}

func (Var) typeNode() {}

func (v Var) Kind() Kind { return v.K }

func (v Var) Apply(s Subst) Type {
	if t, ok := s[v]; ok {
		return t
	}
	return v
}

func (v Var) String() string { return string(v.Name) }

// Con is a named type constructor. Constructors are nominal: two Cons are
// the same type exactly when their names match.
type Con struct {
	Name Ident
	K    Kind
}

func (Con) typeNode() {}

func (c Con) Kind() Kind { return c.K }

func (c Con) Apply(Subst) Type { return c }

func (c Con) String() string { return string(c.Name) }

// App applies a type constructor to an argument, as in List Int. Fn's kind
// must be an Arrow accepting Arg's kind; NewApp checks that, and the
// unifier and substitution preserve it.
type App struct {
	Fn  Type
	Arg Type
}

func (App) typeNode() {}

func (a App) Kind() Kind {
	arrow, ok := a.Fn.Kind().(Arrow)
	if !ok {
		panic(fmt.Sprintf("types: application of %s, which has kind %s, not an arrow kind", a.Fn, a.Fn.Kind()))
	}
	return arrow.Rhs
}

func (a App) Apply(s Subst) Type {
	return App{Fn: a.Fn.Apply(s), Arg: a.Arg.Apply(s)}
}

func (a App) String() string {
	if lhs, rhs, ok := splitFn(a); ok {
		render := lhs.String()
		if _, _, nested := splitFn(lhs); nested {
			render = "(" + render + ")"
		}
		return render + " -> " + rhs.String()
	}
	return a.Fn.String() + " " + argString(a.Arg)
}

// Gen is the i-th quantified placeholder of an enclosing Scheme. It is
// meaningless on its own: its kind lives in the scheme's kind list, and it
// must be instantiated to a fresh Var before it ever reaches the unifier.
type Gen struct {
	Index int
}

func (Gen) typeNode() {}

func (g Gen) Kind() Kind {
	panic(fmt.Sprintf("types: kind of %s requested outside its scheme", g))
}

func (g Gen) Apply(Subst) Type { return g }

func (g Gen) String() string { return fmt.Sprintf("g%d", g.Index) }

// NewApp builds a type application after checking it is well-kinded: fn must
// have an arrow kind whose argument side matches arg's kind. This is the
// only place an App needs a recoverable kind check; once built, every
// rewrite preserves kinds.
func NewApp(fn, arg Type) (Type, error) {
	arrow, ok := fn.Kind().(Arrow)
	if !ok {
		return nil, &KindMismatchError{
			Left: fn, Right: arg,
			LeftKind: fn.Kind(), RightKind: arg.Kind(),
		}
	}
	if !arrow.Lhs.Equal(arg.Kind()) {
		return nil, &KindMismatchError{
			Left: fn, Right: arg,
			LeftKind: fn.Kind(), RightKind: arg.Kind(),
		}
	}
	return App{Fn: fn, Arg: arg}, nil
}

// FreeTypeVars returns the free type variables of the given types, ordered
// by first occurrence left to right across the whole sequence, without
// duplicates. Gen placeholders are not variables and contribute nothing.
func FreeTypeVars(ts ...Type) []Var {
	var acc []Var
	seen := util.NewEmptySet[Var]()
	for _, t := range ts {
		acc = freeTypeVars(t, seen, acc)
	}
	return acc
}

func freeTypeVars(t Type, seen util.MSet[Var], acc []Var) []Var {
	switch t := t.(type) {
	case Var:
		if !seen.Contains(t) {
			seen.Add(t)
			acc = append(acc, t)
		}
		return acc
	case Con:
		return acc
	case App:
		acc = freeTypeVars(t.Fn, seen, acc)
		return freeTypeVars(t.Arg, seen, acc)
	case Gen:
		return acc
	default:
		panic(fmt.Sprintf("types: unhandled type form %T", t))
	}
}

// splitFn matches t against Fn's shape, App(App(ArrowCon, lhs), rhs).
func splitFn(t Type) (lhs, rhs Type, ok bool) {
	outer, ok := t.(App)
	if !ok {
		return nil, nil, false
	}
	inner, ok := outer.Fn.(App)
	if !ok {
		return nil, nil, false
	}
	con, ok := inner.Fn.(Con)
	if !ok || con.Name != ArrowCon.Name {
		return nil, nil, false
	}
	return inner.Arg, outer.Arg, true
}

// argString renders t as the argument of an application, parenthesized when
// it would otherwise bind too loosely.
func argString(t Type) string {
	if _, ok := t.(App); ok {
		return "(" + t.String() + ")"
	}
	return t.String()
}
