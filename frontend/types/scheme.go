package types

import (
	"fmt"
	"github.com/mangekyou-lang/mangekyou/util"
	"strings"
)

// Scheme is a type quantified over the kinds of its generic placeholders:
// Body may mention Gen(0) through Gen(len(Kinds)-1), and Kinds[i] is the
// kind of Gen(i). A scheme with no kinds is just a monotype.
//
// The kind of a Gen is only recoverable positionally from this list; that
// is the simplest coherent design, and the place a qualified-type wrapper
// would slot in if class constraints ever arrive.
type Scheme struct {
	Kinds []Kind
	Body  Type
}

// Generalize quantifies t over its free variables after applying s, skipping
// variables in bound (typically those free in the enclosing environment).
// Quantified variables take Gen indices in first-occurrence order.
func Generalize(t Type, s Subst, bound util.MSet[Var]) Scheme {
	applied := t.Apply(s)
	var quantified []Var
	for _, v := range FreeTypeVars(applied) {
		if !bound.Contains(v) {
			quantified = append(quantified, v)
		}
	}
	kinds := make([]Kind, len(quantified))
	toGen := make(Subst, len(quantified))
	for i, v := range quantified {
		kinds[i] = v.K
		toGen[v] = Gen{Index: i}
	}
	return Scheme{Kinds: kinds, Body: applied.Apply(toGen)}
}

// Instantiate replaces every generic placeholder with a fresh variable of
// the matching kind. Each call draws new variables, so two instantiations
// of the same scheme never share anything.
func (sc Scheme) Instantiate(f *Fresher) Type {
	fresh := make([]Type, len(sc.Kinds))
	for i, k := range sc.Kinds {
		fresh[i] = f.Fresh(k)
	}
	return instGen(sc.Body, fresh)
}

// instGen rewrites Gen placeholders to their replacement types. An index
// outside the scheme's kind list means the scheme was malformed, which no
// Generalize call can produce.
func instGen(t Type, replacements []Type) Type {
	switch t := t.(type) {
	case App:
		return App{Fn: instGen(t.Fn, replacements), Arg: instGen(t.Arg, replacements)}
	case Gen:
		if t.Index < 0 || t.Index >= len(replacements) {
			panic(fmt.Sprintf("types: placeholder %s outside its scheme, which quantifies %d variables", t, len(replacements)))
		}
		return replacements[t.Index]
	case Var, Con:
		return t
	default:
		panic(fmt.Sprintf("types: unhandled type form %T", t))
	}
}

// String renders the scheme with its placeholders shown as letters, kinds
// annotated only when they are not Star: "forall a. a -> a", or
// "forall (f :: * -> *) a. f a" for the higher-kinded case.
func (sc Scheme) String() string {
	if len(sc.Kinds) == 0 {
		return sc.Body.String()
	}
	display := make([]Type, len(sc.Kinds))
	names := make([]string, len(sc.Kinds))
	for i, k := range sc.Kinds {
		name := displayName(i)
		if k.Equal(Star{}) {
			names[i] = name
		} else {
			names[i] = fmt.Sprintf("(%s :: %s)", name, k)
		}
		display[i] = Var{Name: Ident(name), K: k}
	}
	return fmt.Sprintf("forall %s. %s", strings.Join(names, " "), instGen(sc.Body, display))
}

func displayName(i int) string {
	if i < 26 {
		return string(rune('a' + i))
	}
	return fmt.Sprintf("v%d", i)
}
