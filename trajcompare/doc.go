// Package trajcompare measures how similar two agents' committed
// trajectories are, by dynamic time warping their position sequences
// under Euclidean distance. It is a host/test-side analysis tool —
// nothing in orcaline/lp/agent imports it — used to compare a
// scheduled run's output against a reference trajectory (e.g. the
// straight-line path an agent would have taken with no neighbors) or
// to confirm two runs under different Scheduler.Workers settings
// produced geometrically equivalent paths even when floating-point
// noise from goroutine scheduling order nudges individual samples.
package trajcompare
