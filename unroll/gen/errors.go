package gen

import "fmt"

// ArityError reports an operation requested with zero input sequences.
type ArityError struct {
	Op string
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("unrollgen: %s requires at least one input sequence", e.Op)
}

// EmptyInputError reports a fold with no initial value requested over an
// empty sequence.
type EmptyInputError struct {
	Op string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("unrollgen: %s over an empty sequence has no initial accumulator", e.Op)
}

// UnsupportedShapeError reports an input whose length is not statically known.
type UnsupportedShapeError struct {
	Op string
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("unrollgen: %s requires inputs with statically known length", e.Op)
}

// BoundsError reports a take or drop count exceeding the sequence length.
type BoundsError struct {
	Op    string
	Count int
	Len   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("unrollgen: %s count %d exceeds sequence length %d", e.Op, e.Count, e.Len)
}
