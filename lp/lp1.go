package lp

import (
	"math"

	"github.com/katalvlaran/orca2d/orcaline"
	"github.com/katalvlaran/orca2d/vector2"
)

// Epsilon is the tolerance used for parallel-line and feasibility tests
// throughout LP1/LP2/LP3. It mirrors orcaline.Epsilon; kept as a
// separate constant so callers embedding this package can see the
// solver's own tolerance without importing orcaline.
const Epsilon = orcaline.Epsilon

// solveLine1D optimizes along lines[k] subject to the disk of radius rho
// and every line in lines[:k]. When directional is true, target must be
// a unit vector and the objective is to maximize dot(v, target); when
// false the objective is to minimize |v - target|.
//
// Returns (point, true) on success, or (zero, false) if the line does
// not intersect the disk, is blocked outright by a prior parallel line,
// or the feasible interval on the line is empty.
func solveLine1D(lines orcaline.List, k int, rho float64, target vector2.Vector2, directional bool) (vector2.Vector2, bool) {
	active := lines[k]

	a := vector2.Dot(active.Point, active.Direction)
	discriminant := a*a + rho*rho - vector2.AbsSq(active.Point)
	if discriminant < 0 {
		return vector2.Vector2{}, false
	}

	sqrtDisc := math.Sqrt(discriminant)
	tLeft := -a - sqrtDisc
	tRight := -a + sqrtDisc

	for i := 0; i < k; i++ {
		other := lines[i]
		den := vector2.Det(active.Direction, other.Direction)
		num := vector2.Det(other.Direction, vector2.Sub(active.Point, other.Point))

		if math.Abs(den) <= Epsilon {
			// Parallel lines: either line k is entirely on the
			// infeasible side of line i, or line i never constrains it.
			if num < 0 {
				return vector2.Vector2{}, false
			}
			continue
		}

		t := num / den
		if den > 0 {
			if t < tRight {
				tRight = t
			}
		} else {
			if t > tLeft {
				tLeft = t
			}
		}
		if tLeft > tRight {
			return vector2.Vector2{}, false
		}
	}

	var tOpt float64
	if directional {
		if vector2.Dot(target, active.Direction) > 0 {
			tOpt = tRight
		} else {
			tOpt = tLeft
		}
	} else {
		tOpt = vector2.Dot(vector2.Sub(target, active.Point), active.Direction)
		if tOpt < tLeft {
			tOpt = tLeft
		} else if tOpt > tRight {
			tOpt = tRight
		}
	}

	return vector2.Add(active.Point, vector2.Scale(active.Direction, tOpt)), true
}
