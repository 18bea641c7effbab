package orcaline

import (
	"math"

	"github.com/katalvlaran/orca2d/vector2"
)

// Line is a directed half-plane constraint on a velocity: the feasible
// side is the half-plane to the LEFT of the line through Point along
// Direction. A velocity v is feasible iff
//
//	vector2.Det(Direction, vector2.Sub(Point, v)) <= 0
//
// Invariant: |Direction| == 1, within Epsilon.
type Line struct {
	Point     vector2.Vector2
	Direction vector2.Vector2
}

// Epsilon is the default numerical tolerance for parallel-line and
// feasibility tests, matching the tolerance every ORCA line construction
// and LP solver in this module is built against.
const Epsilon = 1e-6

// IsUnitDirection reports whether l.Direction has unit length within eps,
// the correct invariant check for a constructed ORCA line (see the
// package design notes for why a looser magnitude check is insufficient).
func (l Line) IsUnitDirection(eps float64) bool {
	return math.Abs(vector2.Abs(l.Direction)-1) < eps
}

// Violation returns the signed distance of v from the line, where
// positive values denote infeasibility (v lies to the right of the
// directed line).
func Violation(l Line, v vector2.Vector2) float64 {
	return vector2.Det(l.Direction, vector2.Sub(l.Point, v))
}

// List is an ordered sequence of Line. Order matters: obstacle ORCA
// lines must precede agent ORCA lines so that LP3's recovery pass only
// re-optimizes over the agent-derived suffix.
type List []Line
