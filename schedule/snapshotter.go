package schedule

import (
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/katalvlaran/orca2d/vector2"
)

// PositionSnapshot is one agent's committed position/velocity at the
// moment a PeriodicSnapshotter fires, handed to whatever sinks the host
// registered (telemetry, store, ...).
type PositionSnapshot struct {
	Position vector2.Vector2
	Velocity vector2.Vector2
}

// Sink receives the latest batch of PositionSnapshot whenever the
// PeriodicSnapshotter's cron schedule fires.
type Sink func(batch []PositionSnapshot)

// PeriodicSnapshotter hands the latest committed agent positions off to
// one or more sinks on a cron schedule. It never touches the agents
// themselves — it only ever reads whatever Capture last recorded, via
// a lock-protected copy, and is purely an observer of the simulation.
type PeriodicSnapshotter struct {
	mu      sync.Mutex
	latest  []PositionSnapshot
	sinks   []Sink
	cronJob *cron.Cron
}

// NewPeriodicSnapshotter builds a snapshotter whose cron.Cron runs the
// given spec (standard 5-field cron syntax, or "@every 1m"-style
// descriptors).
func NewPeriodicSnapshotter(spec string, sinks ...Sink) (*PeriodicSnapshotter, error) {
	ps := &PeriodicSnapshotter{
		sinks:   sinks,
		cronJob: cron.New(),
	}
	if _, err := ps.cronJob.AddFunc(spec, ps.fire); err != nil {
		return nil, err
	}
	return ps, nil
}

// Capture records the latest committed batch of positions/velocities.
// Call this once per simulation step after the double buffer commits.
func (ps *PeriodicSnapshotter) Capture(batch []PositionSnapshot) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.latest = append(ps.latest[:0], batch...)
}

// Start begins running the cron schedule in the background.
func (ps *PeriodicSnapshotter) Start() {
	ps.cronJob.Start()
}

// Stop halts the cron schedule and waits for any in-flight fire to
// finish.
func (ps *PeriodicSnapshotter) Stop() {
	<-ps.cronJob.Stop().Done()
}

// fire is invoked by cron on schedule; it hands a copy of the latest
// captured batch to every registered sink.
func (ps *PeriodicSnapshotter) fire() {
	ps.mu.Lock()
	batch := append([]PositionSnapshot(nil), ps.latest...)
	ps.mu.Unlock()

	for _, sink := range ps.sinks {
		sink(batch)
	}
}
