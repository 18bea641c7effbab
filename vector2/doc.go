// Package vector2 provides the 2-D vector arithmetic that the rest of
// orca2d is built on: addition, scaling, dot and determinant products,
// and normalization.
//
// Everything here is a value type — Vector2 is a plain (X, Y) pair of
// float64s, copied by value like the rest of this module's leaf
// primitives. There is no mutable shared state and no allocation on
// the hot path.
//
//	import "github.com/katalvlaran/orca2d/vector2"
//
//	a := vector2.New(1, 0)
//	b := vector2.New(0, 1)
//	d := vector2.Dot(a, b) // 0
package vector2
