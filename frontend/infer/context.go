package infer

import (
	"github.com/mangekyou-lang/mangekyou/frontend/types"
	"github.com/mangekyou-lang/mangekyou/internal/log"
	"github.com/mangekyou-lang/mangekyou/util"
)

var logger = log.DefaultLogger.With("section", "infer")

// Context owns the mutable state of one inference run: the substitution
// accumulated across unifications and the fresh-variable counter. Use one
// Context per compilation unit and do not share it between goroutines;
// separate runs must not share counters either, or their variables collide.
type Context struct {
	subst types.Subst
	fresh *types.Fresher
}

func NewContext() *Context {
	return &Context{
		subst: types.Subst{},
		fresh: &types.Fresher{},
	}
}

// FreshVar allocates a type variable this run has never used before.
func (c *Context) FreshVar(k types.Kind) types.Var {
	return c.fresh.Fresh(k)
}

// Unify makes t1 and t2 equal under the context's substitution, swapping in
// the extended substitution on success. On failure the substitution is left
// exactly as it was, so the caller can report the error and keep checking.
func (c *Context) Unify(t1, t2 types.Type) error {
	extended, err := types.Unify(t1, t2, c.subst)
	if err != nil {
		logger.Debug("unification failed",
			"t1", t1.String(), "t2", t2.String(), "err", err.Error())
		return err
	}
	c.subst = extended
	return nil
}

// Apply resolves t as far as the current substitution knows how to.
func (c *Context) Apply(t types.Type) types.Type {
	return t.Apply(c.subst)
}

// Subst returns a snapshot of the current substitution; mutating the copy
// does not affect the context.
func (c *Context) Subst() types.Subst {
	return c.subst.Copy()
}

// Generalize quantifies t under the current substitution, leaving variables
// in bound free.
func (c *Context) Generalize(t types.Type, bound util.MSet[types.Var]) types.Scheme {
	return types.Generalize(t, c.subst, bound)
}

// Instantiate replaces sc's placeholders with fresh variables from this run.
func (c *Context) Instantiate(sc types.Scheme) types.Type {
	return sc.Instantiate(c.fresh)
}
