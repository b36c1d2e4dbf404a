package types

import (
	"fmt"
)

// Fresher hands out type variables never seen before within one inference
// run. Scope one per run: sharing a Fresher across concurrent runs would
// need synchronization, and reusing names across runs is harmless anyway
// since substitutions never travel between them.
//
// The zero value is ready to use and starts at t0.
type Fresher struct {
	count uint64
}

// Fresh allocates a new variable of the given kind.
func (f *Fresher) Fresh(k Kind) Var {
	v := Var{Name: Ident(fmt.Sprintf("t%d", f.count)), K: k}
	f.count++
	return v
}
