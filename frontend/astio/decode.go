// Package astio reads programs from AST interchange documents: the YAML the
// mangekyou parser emits with --emit-ast. Consuming the parser's output as a
// document keeps all parsing of the surface language out of this module
// while still giving the checker a file-shaped input.
package astio

import (
	"fmt"
	"github.com/mangekyou-lang/mangekyou/frontend/ast"
	"github.com/mangekyou-lang/mangekyou/frontend/mgkerr"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"io"
)

// DecodeProgram reads one program document. YAML-level failures come back
// wrapped; documents that parse but make no sense as an AST come back as
// coded BadDocument errors naming the offending node.
func DecodeProgram(r io.Reader) (*ast.Program, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc programDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decoding program document")
	}

	prog := &ast.Program{}
	for i := range doc.Externs {
		ext := &doc.Externs[i]
		if ext.Name == "" {
			return nil, badDoc(ext.Pos.toPos(), fmt.Sprintf("extern %d is missing a name", i))
		}
		prog.Externs = append(prog.Externs, ext.toProto())
	}
	for i := range doc.Functions {
		fn := &doc.Functions[i]
		if fn.Name == "" {
			return nil, badDoc(fn.Pos.toPos(), fmt.Sprintf("function %d is missing a name", i))
		}
		if fn.Body == nil {
			return nil, badDoc(fn.Pos.toPos(), fmt.Sprintf("function '%s' has no body", fn.Name))
		}
		body, err := fn.Body.toExpr()
		if err != nil {
			return nil, err
		}
		prog.Funcs = append(prog.Funcs, ast.Func{Proto: fn.protoDoc.toProto(), Body: body})
	}
	return prog, nil
}

type programDoc struct {
	Externs   []protoDoc `yaml:"externs"`
	Functions []funcDoc  `yaml:"functions"`
}

type posDoc struct {
	Line int `yaml:"line"`
	Col  int `yaml:"col"`
}

func (p *posDoc) toPos() ast.Pos {
	if p == nil {
		return ast.Pos{}
	}
	return ast.Pos{Line: p.Line, Col: p.Col}
}

type protoDoc struct {
	Name   string   `yaml:"name"`
	Params []string `yaml:"params"`
	Pos    *posDoc  `yaml:"pos"`
}

func (d *protoDoc) toProto() ast.Prototype {
	return ast.Prototype{At: d.Pos.toPos(), Name: d.Name, Params: d.Params}
}

type funcDoc struct {
	protoDoc `yaml:",inline"`
	Body     *exprDoc `yaml:"body"`
}

// exprDoc is the union of every expression node's fields; "kind"
// discriminates which ones apply.
type exprDoc struct {
	Kind   string    `yaml:"kind"`
	Pos    *posDoc   `yaml:"pos"`
	Value  *float64  `yaml:"value"`
	Name   string    `yaml:"name"`
	Op     string    `yaml:"op"`
	Lhs    *exprDoc  `yaml:"lhs"`
	Rhs    *exprDoc  `yaml:"rhs"`
	Callee string    `yaml:"callee"`
	Args   []exprDoc `yaml:"args"`
	Init   *exprDoc  `yaml:"init"`
	Body   *exprDoc  `yaml:"body"`
}

func (d *exprDoc) toExpr() (ast.Expr, error) {
	at := d.Pos.toPos()
	switch d.Kind {
	case "number":
		if d.Value == nil {
			return nil, badDoc(at, "number node is missing 'value'")
		}
		return &ast.Number{At: at, Value: *d.Value}, nil

	case "var":
		if d.Name == "" {
			return nil, badDoc(at, "var node is missing 'name'")
		}
		return &ast.Variable{At: at, Name: d.Name}, nil

	case "binary":
		if d.Op == "" {
			return nil, badDoc(at, "binary node is missing 'op'")
		}
		if d.Lhs == nil || d.Rhs == nil {
			return nil, badDoc(at, fmt.Sprintf("binary '%s' needs both 'lhs' and 'rhs'", d.Op))
		}
		lhs, err := d.Lhs.toExpr()
		if err != nil {
			return nil, err
		}
		rhs, err := d.Rhs.toExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Binary{At: at, Op: d.Op, Lhs: lhs, Rhs: rhs}, nil

	case "call":
		if d.Callee == "" {
			return nil, badDoc(at, "call node is missing 'callee'")
		}
		args := make([]ast.Expr, len(d.Args))
		for i := range d.Args {
			arg, err := d.Args[i].toExpr()
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		return &ast.Call{At: at, Callee: d.Callee, Args: args}, nil

	case "let":
		if d.Name == "" {
			return nil, badDoc(at, "let node is missing 'name'")
		}
		if d.Init == nil || d.Body == nil {
			return nil, badDoc(at, fmt.Sprintf("let '%s' needs both 'init' and 'body'", d.Name))
		}
		init, err := d.Init.toExpr()
		if err != nil {
			return nil, err
		}
		body, err := d.Body.toExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Let{At: at, Name: d.Name, Init: init, Body: body}, nil

	case "":
		return nil, badDoc(at, "expression node is missing 'kind'")

	default:
		return nil, badDoc(at, fmt.Sprintf("unknown expression kind '%s'", d.Kind))
	}
}

func badDoc(at ast.Pos, reason string) error {
	return mgkerr.New(mgkerr.NewBadDocument{Positioner: at, Reason: reason})
}
