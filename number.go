package kdtools

import "golang.org/x/exp/constraints"

// Number is the component type constraint for tuple axes: any linearly
// ordered numeric type that can be subtracted and squared into a floating
// accumulator.
type Number interface {
	constraints.Integer | constraints.Float
}
