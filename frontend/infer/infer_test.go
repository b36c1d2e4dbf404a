package infer

import (
	"github.com/mangekyou-lang/mangekyou/frontend/ast"
	"github.com/mangekyou-lang/mangekyou/frontend/mgkerr"
	"github.com/mangekyou-lang/mangekyou/frontend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// expression builders, so the trees in tests stay readable
func num(v float64) ast.Expr { return &ast.Number{Value: v} }

func ref(name string) ast.Expr { return &ast.Variable{Name: name} }

func bin(op string, l, r ast.Expr) ast.Expr {
	return &ast.Binary{Op: op, Lhs: l, Rhs: r}
}
func call(name string, args ...ast.Expr) ast.Expr {
	return &ast.Call{Callee: name, Args: args}
}
func let(name string, init, body ast.Expr) ast.Expr {
	return &ast.Let{Name: name, Init: init, Body: body}
}

func fn(name string, params []string, body ast.Expr) *ast.Func {
	return &ast.Func{
		Proto: ast.Prototype{Name: name, Params: params},
		Body:  body,
	}
}

func TestInferExpr(t *testing.T) {
	testCases := []struct {
		name     string
		expr     ast.Expr
		expected string
	}{
		{name: "number literal", expr: num(4), expected: "Float"},
		{name: "boolean constant", expr: ref("true"), expected: "Bool"},
		{name: "arithmetic", expr: bin("+", num(1), num(2)), expected: "Float"},
		{name: "nested arithmetic", expr: bin("*", bin("+", num(1), num(2)), num(3)), expected: "Float"},
		{name: "comparison", expr: bin("<", num(1), num(2)), expected: "Bool"},
		{name: "empty list stays open", expr: ref("nil"), expected: "List t0"},
		{name: "cons pins the element type", expr: call("cons", num(1), ref("nil")), expected: "List Float"},
		{name: "head of a literal list", expr: call("head", call("cons", ref("true"), ref("nil"))), expected: "Bool"},
		{name: "len of any list", expr: call("len", call("cons", num(1), ref("nil"))), expected: "Float"},
		{name: "let binds a name", expr: let("x", num(1), bin("+", ref("x"), ref("x"))), expected: "Float"},
		{
			name: "let-bound lists generalize",
			expr: let("xs", ref("nil"),
				bin("+",
					call("len", call("cons", num(1), ref("xs"))),
					call("len", call("cons", ref("true"), ref("xs"))))),
			expected: "Float",
		},
		{
			name:     "shadowing inside let",
			expr:     let("x", ref("true"), let("x", num(1), bin("+", ref("x"), ref("x")))),
			expected: "Float",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := NewContext()
			typ, err := ctx.InferExpr(NewPreludeEnv(), tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ctx.Apply(typ).String())
		})
	}
}

func TestInferExprErrors(t *testing.T) {
	testCases := []struct {
		name     string
		expr     ast.Expr
		expected mgkerr.ErrCode
	}{
		{name: "unknown variable", expr: ref("ghost"), expected: mgkerr.UndefinedVariable},
		{name: "unknown callee", expr: call("ghost", num(1)), expected: mgkerr.UndefinedVariable},
		{name: "adding a list", expr: bin("+", num(1), ref("nil")), expected: mgkerr.TypeMismatch},
		{name: "heterogeneous list", expr: call("cons", num(1), call("cons", ref("true"), ref("nil"))), expected: mgkerr.TypeMismatch},
		{
			name:     "let body mixes the binding's uses",
			expr:     let("x", num(1), call("cons", ref("x"), call("cons", ref("true"), ref("nil")))),
			expected: mgkerr.TypeMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := NewContext()
			_, err := ctx.InferExpr(NewPreludeEnv(), tc.expr)
			require.Error(t, err)
			var mgkErr mgkerr.MgkError
			require.ErrorAs(t, err, &mgkErr)
			assert.Equal(t, tc.expected, mgkErr.Code(), "got %s", mgkErr.Error())
		})
	}
}

func TestInferFunc(t *testing.T) {
	testCases := []struct {
		name     string
		fn       *ast.Func
		expected string
	}{
		{
			name:     "identity",
			fn:       fn("id", []string{"x"}, ref("x")),
			expected: "forall a. a -> a",
		},
		{
			name:     "constant function",
			fn:       fn("konst", []string{"x", "y"}, ref("x")),
			expected: "forall a b. a -> b -> a",
		},
		{
			name:     "arithmetic pins parameters",
			fn:       fn("double", []string{"x"}, bin("+", ref("x"), ref("x"))),
			expected: "Float -> Float",
		},
		{
			name:     "zero parameters",
			fn:       fn("two", nil, bin("+", num(1), num(1))),
			expected: "Float",
		},
		{
			name:     "list constructor",
			fn:       fn("singleton", []string{"x"}, call("cons", ref("x"), ref("nil"))),
			expected: "forall a. a -> List a",
		},
		{
			name: "composition through calls",
			fn: fn("second", []string{"xs"},
				call("head", call("tail", ref("xs")))),
			expected: "forall a. List a -> a",
		},
		{
			name:     "recursion unifies with itself",
			fn:       fn("countdown", []string{"n"}, call("countdown", bin("-", ref("n"), num(1)))),
			expected: "forall a. Float -> a",
		},
		{
			name: "recursion with a base case shape",
			fn: fn("sum", []string{"xs"},
				bin("+", call("head", ref("xs")), call("sum", call("tail", ref("xs"))))),
			expected: "List Float -> Float",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := NewContext()
			sc, err := ctx.InferFunc(NewPreludeEnv(), tc.fn)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, sc.String())
		})
	}
}

func TestInferFuncErrors(t *testing.T) {
	testCases := []struct {
		name     string
		fn       *ast.Func
		expected mgkerr.ErrCode
	}{
		{
			name:     "duplicate parameter",
			fn:       fn("dup", []string{"x", "y", "x"}, ref("x")),
			expected: mgkerr.DuplicateParam,
		},
		{
			name:     "self-application fails the occurs check",
			fn:       fn("selfapply", []string{"f"}, call("f", ref("f"))),
			expected: mgkerr.OccursCheck,
		},
		{
			name: "parameter used at two types",
			fn: fn("bad", []string{"x"},
				let("y", bin("+", ref("x"), num(1)),
					call("cons", ref("x"), call("cons", ref("true"), ref("nil"))))),
			expected: mgkerr.TypeMismatch,
		},
		{
			name:     "undefined name in the body",
			fn:       fn("broken", []string{"x"}, call("ghost", ref("x"))),
			expected: mgkerr.UndefinedVariable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := NewContext()
			_, err := ctx.InferFunc(NewPreludeEnv(), tc.fn)
			require.Error(t, err)
			var mgkErr mgkerr.MgkError
			require.ErrorAs(t, err, &mgkErr)
			assert.Equal(t, tc.expected, mgkErr.Code(), "got %s", mgkErr.Error())
		})
	}
}

func TestInferFuncParamsStayMonomorphic(t *testing.T) {
	// a parameter is not generalized inside its own body, unlike a let
	bad := fn("useTwice", []string{"f"},
		let("a", call("f", num(1)),
			call("f", ref("true"))))
	ctx := NewContext()
	_, err := ctx.InferFunc(NewPreludeEnv(), bad)
	require.Error(t, err)
	var mgkErr mgkerr.MgkError
	require.ErrorAs(t, err, &mgkErr)
	assert.Equal(t, mgkerr.TypeMismatch, mgkErr.Code())
}

func TestInferExtern(t *testing.T) {
	testCases := []struct {
		name     string
		proto    *ast.Prototype
		expected string
	}{
		{name: "no parameters", proto: &ast.Prototype{Name: "time"}, expected: "Float"},
		{name: "one parameter", proto: &ast.Prototype{Name: "sin", Params: []string{"x"}}, expected: "Float -> Float"},
		{
			name:     "two parameters",
			proto:    &ast.Prototype{Name: "atan2", Params: []string{"y", "x"}},
			expected: "Float -> Float -> Float",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, InferExtern(tc.proto).String())
		})
	}
}

func TestContextUnify(t *testing.T) {
	ctx := NewContext()
	a := ctx.FreshVar(types.Star{})

	require.NoError(t, ctx.Unify(a, types.Int))
	assert.Equal(t, types.Type(types.Int), ctx.Apply(a))

	t.Run("failure leaves the substitution untouched", func(t *testing.T) {
		err := ctx.Unify(a, types.Bool)
		require.Error(t, err)
		assert.Equal(t, types.Type(types.Int), ctx.Apply(a), "a must still resolve to Int")
	})

	t.Run("snapshots are independent", func(t *testing.T) {
		snapshot := ctx.Subst()
		b := ctx.FreshVar(types.Star{})
		snapshot[b] = types.Bool
		assert.Equal(t, types.Type(b), ctx.Apply(b), "writing to a snapshot must not affect the context")
	})
}

func TestPreludeEnv(t *testing.T) {
	env := NewPreludeEnv()

	testCases := []struct {
		name     string
		expected string
	}{
		{name: "+", expected: "Float -> Float -> Float"},
		{name: "<", expected: "Float -> Float -> Bool"},
		{name: "true", expected: "Bool"},
		{name: "nil", expected: "forall a. List a"},
		{name: "cons", expected: "forall a. a -> List a -> List a"},
		{name: "head", expected: "forall a. List a -> a"},
		{name: "tail", expected: "forall a. List a -> List a"},
		{name: "len", expected: "forall a. List a -> Float"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sc, ok := env.SchemeOf(tc.name)
			require.True(t, ok, "prelude must declare %s", tc.name)
			assert.Equal(t, tc.expected, sc.String())
		})
	}
}
