package mgkerr

import (
	"errors"
	"fmt"
	"github.com/mangekyou-lang/mangekyou/frontend/ast"
	"github.com/mangekyou-lang/mangekyou/frontend/types"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	TypeMismatch
	KindMismatch
	OccursCheck
	UndefinedVariable
	DuplicateParam
	DuplicateDecl
	BadDocument
)

// MgkError is an error with a stable code and a source position, built via
// New so every value carries the stack of its creation site.
type MgkError interface {
	error
	Code() ErrCode
	ast.Positioner

	withStack([]byte) MgkError
	getStack() []byte
}

func FormatWithCode(e MgkError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E MgkError](err E) MgkError {
	return err.withStack(debug.Stack())
}

// FormatWithCodeAndPos prefixes FormatWithCode with the error's source
// position when one is known.
func FormatWithCodeAndPos(e MgkError) string {
	if pos := e.Pos(); pos.Known() {
		return fmt.Sprintf("%s: %s", pos, FormatWithCode(e))
	}
	return FormatWithCode(e)
}

// FromUnify classifies a unification failure from the core type system into
// its coded counterpart, attached to the node whose typing raised it. Errors
// that are none of the three core failures come back Unclassified.
func FromUnify(err error, at ast.Positioner) MgkError {
	var typeMismatch *types.TypeMismatchError
	if errors.As(err, &typeMismatch) {
		return New(NewTypeMismatch{
			Positioner: at,
			First:      typeMismatch.Left,
			Second:     typeMismatch.Right,
		})
	}
	var kindMismatch *types.KindMismatchError
	if errors.As(err, &kindMismatch) {
		return New(NewKindMismatch{
			Positioner: at,
			First:      kindMismatch.Left,
			Second:     kindMismatch.Right,
			FirstKind:  kindMismatch.LeftKind,
			SecondKind: kindMismatch.RightKind,
		})
	}
	var occurs *types.OccursError
	if errors.As(err, &occurs) {
		return New(NewOccursCheck{
			Positioner: at,
			Var:        occurs.Var,
			In:         occurs.In,
		})
	}
	return New(Unclassified{From: err, Positioner: at})
}

type Unclassified struct {
	From error
	ast.Positioner
	stack []byte
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Code() ErrCode    { return None }
func (e Unclassified) getStack() []byte { return e.stack }
func (e Unclassified) withStack(stack []byte) MgkError {
	e.stack = stack
	return e
}

type NewTypeMismatch struct {
	ast.Positioner
	First  types.Type
	Second types.Type
	stack  []byte
}

func (e NewTypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: cannot unify '%v' with '%v'", e.First, e.Second)
}
func (e NewTypeMismatch) Code() ErrCode    { return TypeMismatch }
func (e NewTypeMismatch) getStack() []byte { return e.stack }
func (e NewTypeMismatch) withStack(stack []byte) MgkError {
	e.stack = stack
	return e
}

type NewKindMismatch struct {
	ast.Positioner
	First      types.Type
	Second     types.Type
	FirstKind  types.Kind
	SecondKind types.Kind
	stack      []byte
}

func (e NewKindMismatch) Error() string {
	return fmt.Sprintf("kind mismatch: '%v' has kind %v but '%v' has kind %v",
		e.First, e.FirstKind, e.Second, e.SecondKind)
}
func (e NewKindMismatch) Code() ErrCode    { return KindMismatch }
func (e NewKindMismatch) getStack() []byte { return e.stack }
func (e NewKindMismatch) withStack(stack []byte) MgkError {
	e.stack = stack
	return e
}

type NewOccursCheck struct {
	ast.Positioner
	Var   types.Var
	In    types.Type
	stack []byte
}

func (e NewOccursCheck) Error() string {
	return fmt.Sprintf("cannot construct the infinite type %v ~ %v", e.Var, e.In)
}
func (e NewOccursCheck) Code() ErrCode    { return OccursCheck }
func (e NewOccursCheck) getStack() []byte { return e.stack }
func (e NewOccursCheck) withStack(stack []byte) MgkError {
	e.stack = stack
	return e
}

type NewUndefinedVariable struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewUndefinedVariable) Code() ErrCode { return UndefinedVariable }
func (e NewUndefinedVariable) Error() string {
	return fmt.Sprintf("variable '%s' is not defined", e.Name)
}
func (e NewUndefinedVariable) getStack() []byte { return e.stack }
func (e NewUndefinedVariable) withStack(stack []byte) MgkError {
	e.stack = stack
	return e
}

type NewDuplicateParam struct {
	ast.Positioner
	Name  string
	Func  string
	stack []byte
}

func (e NewDuplicateParam) Code() ErrCode { return DuplicateParam }
func (e NewDuplicateParam) Error() string {
	return fmt.Sprintf("duplicate parameter '%s' in function '%s'", e.Name, e.Func)
}
func (e NewDuplicateParam) getStack() []byte { return e.stack }
func (e NewDuplicateParam) withStack(stack []byte) MgkError {
	e.stack = stack
	return e
}

type NewDuplicateDecl struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewDuplicateDecl) Code() ErrCode { return DuplicateDecl }
func (e NewDuplicateDecl) Error() string {
	return fmt.Sprintf("'%s' is declared more than once at the top level", e.Name)
}
func (e NewDuplicateDecl) getStack() []byte { return e.stack }
func (e NewDuplicateDecl) withStack(stack []byte) MgkError {
	e.stack = stack
	return e
}

type NewBadDocument struct {
	ast.Positioner
	Reason string
	stack  []byte
}

func (e NewBadDocument) Code() ErrCode { return BadDocument }
func (e NewBadDocument) Error() string {
	return fmt.Sprintf("malformed program document: %s", e.Reason)
}
func (e NewBadDocument) getStack() []byte { return e.stack }
func (e NewBadDocument) withStack(stack []byte) MgkError {
	e.stack = stack
	return e
}
