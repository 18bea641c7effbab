// Package store persists simulation run metadata and periodic position
// snapshots to Postgres via database/sql and github.com/lib/pq.
// Trajectory logging is explicitly out of scope for the velocity-
// planning core; store is a host-side, best-effort sink —
// agent.ComputeNewVelocity never calls into it, and a store outage
// never blocks a simulation step.
package store
