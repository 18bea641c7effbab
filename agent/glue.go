package agent

import (
	"github.com/katalvlaran/orca2d/lp"
	"github.com/katalvlaran/orca2d/orcaline"
	"github.com/katalvlaran/orca2d/vector2"
)

// ComputeNewVelocity assembles the subject's ORCA line list (obstacle
// lines first, then one agent-derived line per neighbor), solves LP2
// over it, and falls back to LP3 if LP2 could not satisfy every line.
// It never fails: the returned velocity always has magnitude at most
// s.MaxSpeed (within floating-point tolerance), and s is never mutated.
func ComputeNewVelocity(s Snapshot, dt float64) vector2.Vector2 {
	lines := assembleLines(s, dt)
	numObstacles := len(s.ObstacleLines)

	failIdx, v := lp.LinearProgram2(lines, s.MaxSpeed, s.PrefVel, false)
	if failIdx < len(lines) {
		v = lp.LinearProgram3(lines, numObstacles, failIdx, s.MaxSpeed, v)
	}
	return v
}

// assembleLines builds the ordered line list: obstacle lines (supplied
// verbatim, never recomputed here) followed by one ORCA line per
// neighbor, derived from the subject's step-entry state.
func assembleLines(s Snapshot, dt float64) orcaline.List {
	lines := make(orcaline.List, 0, len(s.ObstacleLines)+len(s.Neighbors))
	lines = append(lines, s.ObstacleLines...)

	self := orcaline.Party{Position: s.Position, Velocity: s.Velocity, Radius: s.Radius}
	for _, n := range s.Neighbors {
		other := orcaline.Party{Position: n.Position, Velocity: n.Velocity, Radius: n.Radius}
		lines = append(lines, orcaline.Build(self, other, s.NeighborTau, dt))
	}
	return lines
}
