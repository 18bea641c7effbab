package lp

import (
	"math"

	"github.com/katalvlaran/orca2d/orcaline"
	"github.com/katalvlaran/orca2d/vector2"
)

// LinearProgram3 recovers from an infeasible LinearProgram2 call. Given
// the full line list, the count of leading obstacle lines (which must
// never be relaxed), the index the failing LinearProgram2 call stopped
// at, the disk radius, and the candidate velocity it returned, it
// produces a relaxed velocity that respects every obstacle line and
// minimizes the maximum signed violation among the agent lines, in a
// greedy left-to-right pass.
//
// For each agent line more violated than the running tolerance, it
// builds a projected constraint set (every obstacle line, plus a
// bisector/projection line for each previously-seen agent line) and
// re-solves LinearProgram2 directionally along the inward normal of the
// violating line, pushing the candidate as far into its feasible side
// as the projected constraints allow.
func LinearProgram3(lines orcaline.List, numObstacles, beginIndex int, rho float64, v vector2.Vector2) vector2.Vector2 {
	dist := 0.0

	for i := beginIndex; i < len(lines); i++ {
		line := lines[i]
		if orcaline.Violation(line, v) <= dist {
			continue
		}

		proj := make(orcaline.List, 0, i+1)
		proj = append(proj, lines[:numObstacles]...)

		for j := numObstacles; j < i; j++ {
			other := lines[j]
			den := vector2.Det(line.Direction, other.Direction)

			var point vector2.Vector2
			if math.Abs(den) <= Epsilon {
				if vector2.Dot(line.Direction, other.Direction) > 0 {
					// Same direction: line j can never be more
					// restrictive than line i in the projected set.
					continue
				}
				point = vector2.Scale(vector2.Add(line.Point, other.Point), 0.5)
			} else {
				t := vector2.Det(other.Direction, vector2.Sub(line.Point, other.Point)) / den
				point = vector2.Add(line.Point, vector2.Scale(line.Direction, t))
			}

			dir := vector2.Normalize(vector2.Sub(other.Direction, line.Direction))
			proj = append(proj, orcaline.Line{Point: point, Direction: dir})
		}

		inwardNormal := vector2.New(-line.Direction.Y, line.Direction.X)
		failIdx, v2 := LinearProgram2(proj, rho, inwardNormal, true)
		if failIdx < len(proj) {
			// Should not happen: the projected set is degenerate.
			// Keep the previous v rather than propagate a bad value.
		} else {
			v = v2
		}

		dist = orcaline.Violation(line, v)
	}

	return v
}
