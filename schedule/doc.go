// Package schedule runs one simulation step across a population of
// agents. The core is embarrassingly parallel within one simulation
// step provided the double-buffer discipline holds: reads of
// position/velocity, writes of new_velocity only.
//
// Scheduler.Step fans every agent's agent.ComputeNewVelocity call out
// across a bounded worker pool (golang.org/x/sync/errgroup) and fans
// the results back in with github.com/niceyeti/channerics/channels,
// then returns the whole step's new velocities as a single slice once
// every agent has finished — it never exposes a partially-computed
// step to a caller.
//
// PeriodicSnapshotter additionally schedules a github.com/robfig/cron
// job that hands committed positions off to telemetry/store on a fixed
// cadence; it is a best-effort observer, never a participant in step
// computation.
package schedule
