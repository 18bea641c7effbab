// Package orcaline builds and represents ORCA half-plane constraints.
//
// A Line is a directed half-plane: the feasible side is the half-plane to
// the LEFT of the directed line through Point along Direction. Build
// constructs one agent-pair ORCA line from the truncated velocity
// obstacle geometry described in the package's accompanying design
// notes (cut-off projection vs. leg projection, overlapping vs.
// non-overlapping neighbors).
package orcaline
