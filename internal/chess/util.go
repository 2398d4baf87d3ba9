package chess

import "golang.org/x/exp/constraints"

// abs returns the absolute value of x.
func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
