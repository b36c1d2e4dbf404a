package types

// The built-in type vocabulary. The surface language is small: numbers are
// Float, comparisons produce Bool, and List is the one higher-kinded
// constructor, there mostly to keep the kind checker honest. Int and Str
// exist for externs and future literals.
var (
	Int   = Con{Name: "Int", K: Star{}}
	Bool  = Con{Name: "Bool", K: Star{}}
	Float = Con{Name: "Float", K: Star{}}
	Str   = Con{Name: "Str", K: Star{}}

	ListCon = Con{Name: "List", K: Arrow{Lhs: Star{}, Rhs: Star{}}}

	// ArrowCon is the function-type constructor; Fn applies it.
	ArrowCon = Con{Name: "->", K: MakeArrow(Star{}, Star{}, Star{})}
)

// Fn builds the function type ts[0] -> ts[1] -> ... -> ts[n-1], associating
// to the right. The last type is the result; with a single type there is no
// function at all and it is returned unchanged. All operands must be of
// kind Star, which every function type in this language is.
func Fn(ts ...Type) Type {
	if len(ts) == 0 {
		panic("types: Fn needs at least a result type")
	}
	result := ts[len(ts)-1]
	for i := len(ts) - 2; i >= 0; i-- {
		result = App{Fn: App{Fn: ArrowCon, Arg: ts[i]}, Arg: result}
	}
	return result
}

// ListOf builds the type List elem.
func ListOf(elem Type) Type {
	return App{Fn: ListCon, Arg: elem}
}
