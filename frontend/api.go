package frontend

import (
	"errors"
	"github.com/hashicorp/go-set/v3"
	"github.com/mangekyou-lang/mangekyou/frontend/ast"
	"github.com/mangekyou-lang/mangekyou/frontend/infer"
	"github.com/mangekyou-lang/mangekyou/frontend/mgkerr"
	"github.com/mangekyou-lang/mangekyou/frontend/types"
	"github.com/mangekyou-lang/mangekyou/internal/log"
)

var logger = log.DefaultLogger.With("section", "frontend")

// Binding pairs a top-level name with its inferred scheme.
type Binding struct {
	Name   string
	Scheme types.Scheme
}

// Result is everything type checking produced for one program: a binding
// per successfully checked declaration, in source order, plus the errors of
// the declarations that failed.
type Result struct {
	Bindings []Binding
	Errors   *mgkerr.Errors
}

// TypeCheck infers a scheme for every declaration of prog. Failure is
// handled per declaration: the error is recorded and checking moves on, so
// one bad declaration still leaves every other one diagnosed. Declarations
// already checked stay visible to later ones either way.
func TypeCheck(prog *ast.Program) *Result {
	res := &Result{}
	env := infer.NewPreludeEnv()
	declared := set.New[string](len(prog.Externs) + len(prog.Funcs))

	for i := range prog.Externs {
		ext := &prog.Externs[i]
		if !declared.Insert(ext.Name) {
			res.Errors = res.Errors.With(mgkerr.New(mgkerr.NewDuplicateDecl{
				Positioner: ext,
				Name:       ext.Name,
			}))
			continue
		}
		sc := infer.InferExtern(ext)
		env.Declare(ext.Name, sc)
		res.Bindings = append(res.Bindings, Binding{Name: ext.Name, Scheme: sc})
	}

	for i := range prog.Funcs {
		fn := &prog.Funcs[i]
		if !declared.Insert(fn.Proto.Name) {
			res.Errors = res.Errors.With(mgkerr.New(mgkerr.NewDuplicateDecl{
				Positioner: &fn.Proto,
				Name:       fn.Proto.Name,
			}))
			continue
		}
		ctx := infer.NewContext()
		sc, err := ctx.InferFunc(env, fn)
		if err != nil {
			var mgkErr mgkerr.MgkError
			if !errors.As(err, &mgkErr) {
				mgkErr = mgkerr.New(mgkerr.Unclassified{From: err, Positioner: fn})
			}
			res.Errors = res.Errors.With(mgkErr)
			continue
		}
		env.Declare(fn.Proto.Name, sc)
		res.Bindings = append(res.Bindings, Binding{Name: fn.Proto.Name, Scheme: sc})
	}

	logger.Debug("type checking done",
		"declarations", len(res.Bindings), "errors", res.Errors.LogValue())
	return res
}
