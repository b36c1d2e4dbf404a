package infer

import (
	"fmt"
	"github.com/mangekyou-lang/mangekyou/frontend/ast"
	"github.com/mangekyou-lang/mangekyou/frontend/mgkerr"
	"github.com/mangekyou-lang/mangekyou/frontend/types"
	"github.com/mangekyou-lang/mangekyou/util"
	"github.com/xtgo/set"
	"slices"
	"sort"
)

// InferExpr walks an expression and returns its type under the context's
// substitution. The returned type may still be a variable; resolve it with
// Context.Apply once the caller is done unifying. Errors carry the position
// of the node that raised them and leave the substitution untouched.
func (c *Context) InferExpr(env *TypeEnv, expr ast.Expr) (types.Type, error) {
	switch e := expr.(type) {
	case *ast.Number:
		return types.Float, nil

	case *ast.Variable:
		sc, ok := env.SchemeOf(e.Name)
		if !ok {
			return nil, mgkerr.New(mgkerr.NewUndefinedVariable{
				Positioner: e,
				Name:       e.Name,
			})
		}
		return c.Instantiate(sc), nil

	case *ast.Binary:
		// operators are names like any other, applied to two operands
		return c.inferApply(env, e, e.Op, e.Lhs, e.Rhs)

	case *ast.Call:
		return c.inferApply(env, e, e.Callee, e.Args...)

	case *ast.Let:
		initType, err := c.InferExpr(env, e.Init)
		if err != nil {
			return nil, err
		}
		sc := c.Generalize(initType, env.FreeTypeVars(c.subst))
		scope := NewTypeEnv(env)
		scope.Declare(e.Name, sc)
		return c.InferExpr(scope, e.Body)

	default:
		panic(fmt.Sprintf("infer: unhandled expression form %T", expr))
	}
}

// inferApply types the application of the named function or operator to
// args: instantiate the callee's scheme, infer every argument, and unify
// the callee against a function type ending in a fresh result variable.
func (c *Context) inferApply(env *TypeEnv, at ast.Positioner, name string, args ...ast.Expr) (types.Type, error) {
	sc, ok := env.SchemeOf(name)
	if !ok {
		return nil, mgkerr.New(mgkerr.NewUndefinedVariable{
			Positioner: at,
			Name:       name,
		})
	}
	callee := c.Instantiate(sc)
	operands := make([]types.Type, 0, len(args)+1)
	for _, arg := range args {
		argType, err := c.InferExpr(env, arg)
		if err != nil {
			return nil, err
		}
		operands = append(operands, argType)
	}
	result := c.FreshVar(types.Star{})
	operands = append(operands, result)
	if err := c.Unify(callee, types.Fn(operands...)); err != nil {
		return nil, mgkerr.FromUnify(err, at)
	}
	return result, nil
}

// InferFunc types a whole function declaration and generalizes it into the
// scheme its callers will instantiate. The declaration sees itself through
// a monomorphic variable while its own body is checked, so recursive calls
// unify against the same type the declaration ends up with.
func (c *Context) InferFunc(env *TypeEnv, fn *ast.Func) (types.Scheme, error) {
	if dup, ok := duplicateParam(fn.Proto.Params); ok {
		return types.Scheme{}, mgkerr.New(mgkerr.NewDuplicateParam{
			Positioner: &fn.Proto,
			Name:       dup,
			Func:       fn.Proto.Name,
		})
	}

	scope := NewTypeEnv(env)
	params := make([]util.Pair[string, types.Var], len(fn.Proto.Params))
	for i, name := range fn.Proto.Params {
		v := c.FreshVar(types.Star{})
		params[i] = util.NewPair(name, v)
		scope.Declare(name, types.Scheme{Body: v})
	}
	self := c.FreshVar(types.Star{})
	scope.Declare(fn.Proto.Name, types.Scheme{Body: self})

	bodyType, err := c.InferExpr(scope, fn.Body)
	if err != nil {
		return types.Scheme{}, err
	}

	operands := make([]types.Type, 0, len(params)+1)
	for _, param := range params {
		operands = append(operands, param.Snd)
	}
	operands = append(operands, bodyType)
	if err := c.Unify(self, types.Fn(operands...)); err != nil {
		return types.Scheme{}, mgkerr.FromUnify(err, fn)
	}

	sc := c.Generalize(self, env.FreeTypeVars(c.subst))
	logger.Debug("inferred declaration", "name", fn.Proto.Name, "scheme", sc.String())
	return sc, nil
}

// InferExtern types an extern prototype. The syntax has no annotations, so
// externs follow the host calling convention: Float in every position.
func InferExtern(proto *ast.Prototype) types.Scheme {
	operands := make([]types.Type, len(proto.Params)+1)
	for i := range operands {
		operands[i] = types.Float
	}
	return types.Scheme{Body: types.Fn(operands...)}
}

// duplicateParam reports a parameter name bound more than once. Uniq leaves
// the duplicates past the returned size, so one of them can be named.
func duplicateParam(params []string) (string, bool) {
	if len(params) < 2 {
		return "", false
	}
	sorted := slices.Clone(params)
	sort.Strings(sorted)
	n := set.Uniq(sort.StringSlice(sorted))
	if n == len(sorted) {
		return "", false
	}
	return sorted[n], true
}
