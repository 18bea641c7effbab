// Package agent assembles a single agent's ORCA lines and runs the
// LP2 → LP3 pipeline to produce its next velocity.
//
// ComputeNewVelocity is the only entry point the rest of this module
// needs: it is a pure function of a Snapshot and a time step, never
// fails, and never mutates its input — callers own the double-buffer
// discipline of committing each returned velocity into Velocity only after every
// agent in a step has been computed.
package agent
