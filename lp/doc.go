// Package lp implements the three-level linear program ORCA velocity
// selection is built on:
//
//   - LP1 optimizes a single point along one ORCA line, subject to the
//     disk constraint and every previously-accepted line.
//   - LP2 incrementally applies LP1 across an ordered line list inside
//     a disk of radius rho, returning either the optimal velocity or
//     the index of the first line it could not satisfy.
//   - LP3 recovers from an LP2 failure by relaxing the unsatisfied
//     agent lines one at a time, minimizing the worst violation.
//
// All three are deterministic: callers iterate lines in the order
// given, never in a randomized order, so identical inputs yield
// bit-identical outputs (see the agent package's determinism tests).
package lp
