package orcaline

import (
	"math"

	"github.com/katalvlaran/orca2d/vector2"
)

// Party is one side of an agent pair as seen by the ORCA line builder:
// a position, a velocity, and a collision radius.
type Party struct {
	Position vector2.Vector2
	Velocity vector2.Vector2
	Radius   float64
}

// Build produces the ORCA half-plane constraint that self must respect
// with regard to other, given the neighbor time horizon tau and the
// simulation time step dt (tau, dt > 0).
//
// Build implements the truncated velocity obstacle construction:
//   - Case A (not currently overlapping, d^2 > R^2): project the
//     relative velocity onto the cut-off arc at the horizon (A1) or onto
//     one of the two VO legs (A2), whichever the relative velocity lies
//     within.
//   - Case B (already overlapping, d^2 <= R^2): the collision must be
//     resolved within one time step, so 1/dt replaces 1/tau.
//
// The anchor point is self.Velocity + 0.5*u: the 0.5 factor is the
// shared-responsibility split between two symmetric agents. A caller
// building an agent-vs-static-obstacle line instead uses a factor of 1
// and does not go through this function.
func Build(self, other Party, tau, dt float64) Line {
	dp := vector2.Sub(other.Position, self.Position)
	dv := vector2.Sub(self.Velocity, other.Velocity)
	dSq := vector2.AbsSq(dp)
	r := self.Radius + other.Radius
	rSq := r * r

	if dSq > rSq {
		return buildSeparated(self, dp, dv, dSq, r, rSq, tau)
	}
	return buildOverlapping(self, dp, dv, r, dt)
}

// buildSeparated handles Case A: the agents do not currently overlap.
func buildSeparated(self Party, dp, dv vector2.Vector2, dSq, r, rSq, tau float64) Line {
	w := vector2.Sub(dv, vector2.Scale(dp, 1/tau))
	wLenSq := vector2.AbsSq(w)
	c := vector2.Dot(w, dp)

	var direction, u vector2.Vector2
	if c < 0 && c*c > rSq*wLenSq {
		// A1: cut-off projection. w points back toward the cut-off arc
		// and falls within its angular extent.
		wLen := math.Sqrt(wLenSq)
		uHat := vector2.Div(w, wLen)
		direction = vector2.Perp(uHat)
		u = vector2.Scale(uHat, r/tau-wLen)
	} else {
		// A2: leg projection, onto whichever tangent ray the relative
		// velocity falls on the side of.
		leg := math.Sqrt(dSq - rSq)
		if vector2.Det(dp, w) > 0 {
			// Left leg.
			direction = vector2.New(
				(dp.X*leg-dp.Y*r)/dSq,
				(dp.X*r+dp.Y*leg)/dSq,
			)
		} else {
			// Right leg.
			direction = vector2.New(
				-(dp.X*leg+dp.Y*r)/dSq,
				-(-dp.X*r+dp.Y*leg)/dSq,
			)
		}
		u = vector2.Sub(vector2.Scale(direction, vector2.Dot(dv, direction)), dv)
	}

	return Line{
		Point:     vector2.Add(self.Velocity, vector2.Scale(u, 0.5)),
		Direction: direction,
	}
}

// buildOverlapping handles Case B: the agents already overlap, so the
// collision must be resolved within the next time step rather than at
// the neighbor time horizon.
func buildOverlapping(self Party, dp, dv vector2.Vector2, r, dt float64) Line {
	w := vector2.Sub(dv, vector2.Scale(dp, 1/dt))
	wLen := vector2.Abs(w)
	uHat := vector2.Div(w, wLen)

	direction := vector2.Perp(uHat)
	u := vector2.Scale(uHat, r/dt-wLen)

	return Line{
		Point:     vector2.Add(self.Velocity, vector2.Scale(u, 0.5)),
		Direction: direction,
	}
}
