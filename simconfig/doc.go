// Package simconfig loads the tunable defaults a hosted orca2d
// simulation runs with: the numerical epsilon, default neighbor and
// obstacle time horizons, per-step worker concurrency, and the
// addresses/DSNs the telemetry and store packages bind to.
//
// Config is built with a functional-options constructor that applies
// defaults first, then
// viper-sourced overrides, then options, deterministically left to
// right. None of this ever reaches the orcaline/lp/agent packages
// directly — they take time horizons as plain arguments and use their
// own fixed Epsilon constant, never a Config, so the core stays a pure
// function of its inputs. Config.Epsilon is validated here but is not
// passed to the solver.
package simconfig
