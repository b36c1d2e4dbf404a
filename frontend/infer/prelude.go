package infer

import (
	"github.com/mangekyou-lang/mangekyou/frontend/types"
)

// NewPreludeEnv builds the environment every program starts from:
// arithmetic over Float, comparison producing Bool, the boolean constants,
// and the polymorphic list vocabulary. List is the one higher-kinded
// constructor in the prelude, which keeps the kind checker exercised by
// ordinary programs.
func NewPreludeEnv() *TypeEnv {
	env := NewTypeEnv(nil)

	binary := types.Scheme{Body: types.Fn(types.Float, types.Float, types.Float)}
	for _, op := range []string{"+", "-", "*"} {
		env.Declare(op, binary)
	}
	env.Declare("<", types.Scheme{Body: types.Fn(types.Float, types.Float, types.Bool)})
	env.Declare("true", types.Scheme{Body: types.Bool})
	env.Declare("false", types.Scheme{Body: types.Bool})

	elem := types.Gen{Index: 0}
	oneStar := []types.Kind{types.Star{}}
	env.Declare("nil", types.Scheme{Kinds: oneStar, Body: types.ListOf(elem)})
	env.Declare("cons", types.Scheme{Kinds: oneStar, Body: types.Fn(elem, types.ListOf(elem), types.ListOf(elem))})
	env.Declare("head", types.Scheme{Kinds: oneStar, Body: types.Fn(types.ListOf(elem), elem)})
	env.Declare("tail", types.Scheme{Kinds: oneStar, Body: types.Fn(types.ListOf(elem), types.ListOf(elem))})
	env.Declare("len", types.Scheme{Kinds: oneStar, Body: types.Fn(types.ListOf(elem), types.Float)})

	return env
}
