package util

// Pair couples two values of unrelated types, for the places an ad hoc
// two-field struct would otherwise be declared inline.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

func NewPair[A, B any](fst A, snd B) Pair[A, B] {
	return Pair[A, B]{Fst: fst, Snd: snd}
}
