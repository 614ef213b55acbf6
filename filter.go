package recurgo

import (
	"github.com/hupe1980/recurgo/matrix"
)

// FilterFunc is a 2-D filter over a matrix argument. The matrix may sit
// at any position in the argument list; remaining arguments carry
// filter parameters such as kernel sizes.
type FilterFunc func(args ...any) (matrix.Matrix, error)

// WrapLagFilter lifts fn into the time-lag domain: the matrix argument
// at argIndex is converted to lag coordinates, fn runs unchanged on the
// rewritten argument list, and the result is converted back to
// time-time coordinates.
//
// This lets ordinary rectangular filters, such as a median filter,
// operate correctly on data whose meaningful structure is diagonal.
func WrapLagFilter(fn FilterFunc, pad bool, argIndex int) FilterFunc {
	return func(args ...any) (matrix.Matrix, error) {
		if argIndex < 0 || argIndex >= len(args) {
			return nil, paramErrorf("filter argument index %d out of range for %d arguments", argIndex, len(args))
		}
		m, ok := args[argIndex].(matrix.Matrix)
		if !ok {
			return nil, paramErrorf("filter argument %d is %T, not a matrix", argIndex, args[argIndex])
		}

		lag, err := ToLag(m, pad, 1)
		if err != nil {
			return nil, err
		}

		rewritten := make([]any, len(args))
		copy(rewritten, args)
		rewritten[argIndex] = lag

		out, err := fn(rewritten...)
		if err != nil {
			return nil, err
		}
		return FromLag(out, 1)
	}
}
