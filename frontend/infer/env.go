package infer

import (
	"github.com/benbjohnson/immutable"
	"github.com/mangekyou-lang/mangekyou/frontend/types"
	"github.com/mangekyou-lang/mangekyou/util"
	"iter"
)

// TypeEnv maps term-level names to their type schemes. The backing map is
// persistent: a child scope made with NewTypeEnv shares structure with its
// parent, and declarations in the child never leak back out.
type TypeEnv struct {
	vars *immutable.Map[string, types.Scheme]
}

// NewTypeEnv returns a scope extending parent, or an empty one for nil.
func NewTypeEnv(parent *TypeEnv) *TypeEnv {
	if parent != nil {
		return &TypeEnv{vars: parent.vars}
	}
	return &TypeEnv{vars: immutable.NewMap[string, types.Scheme](nil)}
}

// Declare binds name in this scope, shadowing any previous binding.
func (e *TypeEnv) Declare(name string, sc types.Scheme) {
	e.vars = e.vars.Set(name, sc)
}

// SchemeOf looks name up in this scope and everything it extends.
func (e *TypeEnv) SchemeOf(name string) (types.Scheme, bool) {
	return e.vars.Get(name)
}

// All iterates every visible binding, in no particular order.
func (e *TypeEnv) All() iter.Seq2[string, types.Scheme] {
	return func(yield func(string, types.Scheme) bool) {
		itr := e.vars.Iterator()
		for !itr.Done() {
			name, sc, _ := itr.Next()
			if !yield(name, sc) {
				return
			}
		}
	}
}

// FreeTypeVars collects the variables free in any binding after applying s:
// exactly the set a Generalize call at this scope must leave unquantified.
func (e *TypeEnv) FreeTypeVars(s types.Subst) util.MSet[types.Var] {
	free := util.NewEmptySet[types.Var]()
	for _, sc := range e.All() {
		free.Add(types.FreeTypeVars(sc.Body.Apply(s))...)
	}
	return free
}
