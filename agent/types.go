package agent

import (
	"github.com/katalvlaran/orca2d/orcaline"
	"github.com/katalvlaran/orca2d/vector2"
)

// NeighborView is a neighbor's position, velocity, and radius as
// observed by the subject agent for a single step. Neighbors are
// assumed already filtered and trimmed to the K nearest within sensing
// range by an external collaborator; this package does not re-sort or
// re-filter them, and their order does not affect the result.
type NeighborView struct {
	Position vector2.Vector2
	Velocity vector2.Vector2
	Radius   float64
}

// Snapshot is the read-only, step-entry state of one agent. It is
// created fresh per agent per step; the only fields that persist across
// steps in the host are Position and Velocity, and this package never
// writes to them.
type Snapshot struct {
	Position    vector2.Vector2
	Velocity    vector2.Vector2
	PrefVel     vector2.Vector2
	Radius      float64
	MaxSpeed    float64
	NeighborTau float64 // time horizon for neighbor ORCA lines, > 0
	ObstacleTau float64 // time horizon for obstacle ORCA lines, > 0 (reserved for future use, see orcaline.Build's factor-1 note)

	Neighbors []NeighborView

	// ObstacleLines are pre-built ORCA lines against static obstacles,
	// supplied by an external collaborator. They are always treated as
	// the strict prefix of the assembled line list (see glue.go).
	ObstacleLines orcaline.List
}
