package vector2

import "github.com/golang/geo/r2"

// ToR2 converts a Vector2 to a github.com/golang/geo r2.Point, for hosts
// that already standardize on golang/geo for their spatial types.
func ToR2(v Vector2) r2.Point {
	return r2.Point{X: v.X, Y: v.Y}
}

// FromR2 converts a github.com/golang/geo r2.Point to a Vector2.
func FromR2(p r2.Point) Vector2 {
	return Vector2{X: p.X, Y: p.Y}
}
