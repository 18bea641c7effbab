package schedule

import (
	"context"
	"fmt"

	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/orca2d/agent"
	"github.com/katalvlaran/orca2d/vector2"
)

// Scheduler computes a whole step's worth of new velocities in
// parallel, bounded by Workers concurrent goroutines.
type Scheduler struct {
	// Workers caps the number of agents computed concurrently. Zero
	// means unbounded (errgroup.SetLimit(-1)).
	Workers int
}

// result pairs a snapshot's index with its computed velocity, so
// fanning results back in through channerics.Merge never has to assume
// channel arrival order.
type result struct {
	index    int
	velocity vector2.Vector2
}

// Step computes agent.ComputeNewVelocity for every snapshot, reading
// only the step-entry state each snapshot carries (none of them are
// mutated, and none observes another's output — the step-entry
// snapshot rule requires this). It returns one velocity per snapshot,
// in the same order as snapshots, or an error if ctx is canceled
// before every agent finishes.
func (s Scheduler) Step(ctx context.Context, snapshots []agent.Snapshot, dt float64) ([]vector2.Vector2, error) {
	if len(snapshots) == 0 {
		return nil, nil
	}

	group, gctx := errgroup.WithContext(ctx)
	if s.Workers > 0 {
		group.SetLimit(s.Workers)
	}

	// done mirrors gctx's cancellation as a plain channel, the shape
	// channerics.Merge/OrDone expect.
	done := make(chan struct{})
	go func() {
		<-gctx.Done()
		close(done)
	}()

	perAgent := make([]<-chan result, len(snapshots))
	for i, snap := range snapshots {
		i, snap := i, snap
		ch := make(chan result, 1)
		perAgent[i] = ch
		group.Go(func() error {
			defer close(ch)
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			v := agent.ComputeNewVelocity(snap, dt)
			select {
			case ch <- result{index: i, velocity: v}:
			case <-gctx.Done():
				return gctx.Err()
			}
			return nil
		})
	}

	merged := channerics.Merge(done, perAgent...)

	velocities := make([]vector2.Vector2, len(snapshots))
	collected := 0
	for r := range channerics.OrDone(done, merged) {
		velocities[r.index] = r.velocity
		collected++
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStepCanceled, err)
	}
	if collected != len(snapshots) {
		return nil, ErrStepCanceled
	}
	return velocities, nil
}
