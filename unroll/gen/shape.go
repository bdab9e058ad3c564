package gen

// Shape describes the statically known form of one input sequence.
// A shape with Known false models a sequence type that carries no length
// information (in Go terms, a slice where an array is required).
type Shape struct {
	Len   int
	Known bool
}

// Arity returns the shape of a sequence with exactly n elements.
func Arity(n int) Shape {
	return Shape{Len: n, Known: true}
}

// UnknownShape returns a shape without a statically known length.
func UnknownShape() Shape {
	return Shape{}
}

// MinLen resolves the generation length for a set of input shapes: the
// minimum of their arities. Operations over several sequences truncate to
// this length. op names the requesting operation for error reporting.
//
// Zero shapes is an *ArityError; any unknown-length shape is an
// *UnsupportedShapeError.
func MinLen(op string, shapes ...Shape) (int, error) {
	if len(shapes) == 0 {
		return 0, &ArityError{Op: op}
	}
	min := -1
	for _, s := range shapes {
		if !s.Known || s.Len < 0 {
			return 0, &UnsupportedShapeError{Op: op}
		}
		if min < 0 || s.Len < min {
			min = s.Len
		}
	}
	return min, nil
}
