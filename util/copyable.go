package util

// Copyable is anything that can produce an independent copy of itself.
type Copyable[A any] interface {
	Copy() A
}
