package lp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/orca2d/lp"
	"github.com/katalvlaran/orca2d/orcaline"
	"github.com/katalvlaran/orca2d/vector2"
)

// maxAgentViolation returns the largest signed violation of v across the
// agent-derived lines (those at and after numObstacles).
func maxAgentViolation(lines orcaline.List, numObstacles int, v vector2.Vector2) float64 {
	max := math.Inf(-1)
	for i := numObstacles; i < len(lines); i++ {
		if viol := orcaline.Violation(lines[i], v); viol > max {
			max = viol
		}
	}
	return max
}

// Scenario 4: x >= 2 and x <= 1 are contradictory. LP2 fails at index 1;
// LP3 must land near the x=1.5 bisector with bounded worst-case
// violation across both lines.
func TestLinearProgram3_ContradictionBisector(t *testing.T) {
	lines := orcaline.List{
		{Point: vector2.New(2, 0), Direction: vector2.New(0, -1)}, // x >= 2
		{Point: vector2.New(1, 0), Direction: vector2.New(0, 1)},  // x <= 1
	}
	rho := 3.0

	failIdx, vOnFail := lp.LinearProgram2(lines, rho, vector2.New(1.5, 0), false)
	assert.Equal(t, 1, failIdx)

	v := lp.LinearProgram3(lines, 0, failIdx, rho, vOnFail)

	assert.InDelta(t, 1.5, v.X, 1e-6, "recovery settles on the bisector of the two contradictory lines")
	assert.LessOrEqual(t, maxAgentViolation(lines, 0, v), 0.5+1e-6)
}

// LP3's output never has a larger maximum violation across
// the agent lines than the v LP2 handed it on failure.
func TestLinearProgram3_MonotoneFallback(t *testing.T) {
	lines := orcaline.List{
		{Point: vector2.New(2, 0), Direction: vector2.New(0, -1)},
		{Point: vector2.New(1, 0), Direction: vector2.New(0, 1)},
		{Point: vector2.New(0, 1.8), Direction: vector2.New(-1, 0)},
	}
	rho := 4.0

	failIdx, vOnFail := lp.LinearProgram2(lines, rho, vector2.New(1.5, 0.2), false)
	if failIdx == len(lines) {
		t.Skip("scenario did not produce an LP2 failure to recover from")
	}

	before := maxAgentViolation(lines, 0, vOnFail)
	v := lp.LinearProgram3(lines, 0, failIdx, rho, vOnFail)
	after := maxAgentViolation(lines, 0, v)

	assert.LessOrEqual(t, after, before+1e-9)
}

func TestLinearProgram3_ObstacleLinesNeverRelaxed(t *testing.T) {
	// One hard obstacle line (x <= 0) followed by two contradictory
	// agent lines. LP3 must never cross the obstacle boundary, even
	// though relaxing it would reduce agent-line violation.
	lines := orcaline.List{
		{Point: vector2.New(0, 0), Direction: vector2.New(0, 1)},  // obstacle: x <= 0
		{Point: vector2.New(5, 0), Direction: vector2.New(0, -1)}, // agent: x >= 5
		{Point: vector2.New(-5, 0), Direction: vector2.New(0, 1)}, // agent: x <= -5
	}
	rho := 10.0
	numObstacles := 1

	failIdx, vOnFail := lp.LinearProgram2(lines, rho, vector2.New(0, 0), false)
	assert.Less(t, failIdx, len(lines))

	v := lp.LinearProgram3(lines, numObstacles, failIdx, rho, vOnFail)
	assert.LessOrEqual(t, orcaline.Violation(lines[0], v), 1e-6, "the obstacle line must remain satisfied")
}
