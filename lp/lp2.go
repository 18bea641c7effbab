package lp

import (
	"github.com/katalvlaran/orca2d/orcaline"
	"github.com/katalvlaran/orca2d/vector2"
)

// LinearProgram2 optimizes inside the disk of radius rho subject to the
// ordered half-plane constraints in lines. When directional is true,
// target must be a unit vector and the search walks the disk boundary
// maximizing dot(v, target); otherwise it minimizes |v - target|.
//
// On success it returns (len(lines), v) with v globally optimal. On
// failure at line k it returns (k, v) where v is the last-known-feasible
// candidate, ready to be handed to LinearProgram3.
func LinearProgram2(lines orcaline.List, rho float64, target vector2.Vector2, directional bool) (int, vector2.Vector2) {
	var v vector2.Vector2
	switch {
	case directional:
		v = vector2.Scale(target, rho)
	case vector2.AbsSq(target) > rho*rho:
		v = vector2.Scale(vector2.Normalize(target), rho)
	default:
		v = target
	}

	for k := 0; k < len(lines); k++ {
		if orcaline.Violation(lines[k], v) > 0 {
			vPrev := v
			point, ok := solveLine1D(lines, k, rho, target, directional)
			if !ok {
				return k, vPrev
			}
			v = point
		}
	}

	return len(lines), v
}
