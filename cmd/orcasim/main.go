// Command orcasim runs a small population of agents through ORCA
// collision-avoidance velocity planning for a fixed number of steps,
// optionally streaming live positions over telemetry and persisting
// periodic snapshots to store.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"os"

	"github.com/katalvlaran/orca2d/agent"
	"github.com/katalvlaran/orca2d/schedule"
	"github.com/katalvlaran/orca2d/simconfig"
	"github.com/katalvlaran/orca2d/store"
	"github.com/katalvlaran/orca2d/telemetry"
	"github.com/katalvlaran/orca2d/vector2"
)

func main() {
	configPath := flag.String("config", "", "path to a simconfig YAML/JSON/TOML file (optional)")
	scenario := flag.String("scenario", "headon", "scenario to run: headon, perpendicular, or random")
	steps := flag.Int("steps", 100, "number of simulation steps to run")
	agents := flag.Int("agents", 8, "agent count for the random scenario")
	telemetryAddr := flag.String("telemetry", "", "serve live telemetry at this address, e.g. 127.0.0.1:8088 (disabled if empty)")
	storeDSN := flag.String("store", "", "Postgres DSN to persist periodic snapshots to (disabled if empty)")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *telemetryAddr, *storeDSN)
	if err != nil {
		log.Fatalf("orcasim: config: %v", err)
	}

	sim, err := buildScenario(*scenario, *agents, cfg)
	if err != nil {
		log.Fatalf("orcasim: scenario: %v", err)
	}

	ctx := context.Background()

	var snapshotter *schedule.PeriodicSnapshotter
	var runStore *store.RunStore
	if cfg.StoreDSN != "" {
		runStore, err = store.Open(cfg.StoreDSN)
		if err != nil {
			log.Fatalf("orcasim: store: %v", err)
		}
		defer runStore.Close()
		if err := runStore.Migrate(ctx); err != nil {
			log.Fatalf("orcasim: migrate: %v", err)
		}

		onError := func(err error) { log.Printf("orcasim: snapshot sink: %v", err) }
		snapshotter, err = schedule.NewPeriodicSnapshotter(cfg.SnapshotCron, runStore.Sink(ctx, onError))
		if err != nil {
			log.Fatalf("orcasim: snapshotter: %v", err)
		}
		snapshotter.Start()
		defer snapshotter.Stop()
	}

	var hub *telemetry.Hub
	if cfg.TelemetryAddr != "" {
		server := telemetry.NewServer()
		hub = server.Hub
		go func() {
			log.Printf("orcasim: telemetry listening on %s", cfg.TelemetryAddr)
			if err := http.ListenAndServe(cfg.TelemetryAddr, server); err != nil {
				log.Printf("orcasim: telemetry server stopped: %v", err)
			}
		}()
	}

	scheduler := schedule.Scheduler{Workers: cfg.Workers}

	for step := 0; step < *steps; step++ {
		snapshots := sim.snapshots()
		velocities, err := scheduler.Step(ctx, snapshots, cfg.DefaultDt)
		if err != nil {
			log.Fatalf("orcasim: step %d: %v", step, err)
		}
		sim.commit(velocities, cfg.DefaultDt)

		if hub != nil {
			hub.Broadcast(sim.frames())
		}
		if snapshotter != nil {
			snapshotter.Capture(sim.positionSnapshots())
		}
	}

	if runStore != nil {
		if err := runStore.Summarize(ctx, *steps); err != nil {
			log.Printf("orcasim: summarize: %v", err)
		}
	}

	fmt.Printf("orcasim: ran %d steps over %d agents (scenario=%s)\n", *steps, len(sim.bodies), *scenario)
	os.Exit(0)
}

func loadConfig(path, telemetryAddr, storeDSN string) (simconfig.Config, error) {
	var opts []simconfig.Option
	if telemetryAddr != "" {
		opts = append(opts, simconfig.WithTelemetryAddr(telemetryAddr))
	}

	var cfg simconfig.Config
	var err error
	if path != "" {
		cfg, err = simconfig.Load(path, opts...)
	} else {
		cfg, err = simconfig.New(nil, opts...)
	}
	if err != nil {
		return simconfig.Config{}, err
	}
	if storeDSN != "" {
		cfg.StoreDSN = storeDSN
	}
	return cfg, nil
}

// body is one simulated agent's persistent state across steps — the
// only state the velocity-planning core itself never owns.
type body struct {
	id       string
	position vector2.Vector2
	velocity vector2.Vector2
	goal     vector2.Vector2
	radius   float64
	maxSpeed float64
}

func (b body) prefVelocity() vector2.Vector2 {
	toGoal := vector2.Sub(b.goal, b.position)
	if vector2.Abs(toGoal) < 1e-9 {
		return vector2.Vector2{}
	}
	return vector2.Scale(vector2.Normalize(toGoal), b.maxSpeed)
}

type simulation struct {
	bodies []body
	tau    float64
}

func (s *simulation) snapshots() []agent.Snapshot {
	out := make([]agent.Snapshot, len(s.bodies))
	for i, b := range s.bodies {
		var neighbors []agent.NeighborView
		for j, other := range s.bodies {
			if j == i {
				continue
			}
			neighbors = append(neighbors, agent.NeighborView{
				Position: other.position,
				Velocity: other.velocity,
				Radius:   other.radius,
			})
		}
		out[i] = agent.Snapshot{
			Position:    b.position,
			Velocity:    b.velocity,
			PrefVel:     b.prefVelocity(),
			Radius:      b.radius,
			MaxSpeed:    b.maxSpeed,
			NeighborTau: s.tau,
			ObstacleTau: s.tau,
			Neighbors:   neighbors,
		}
	}
	return out
}

// commit applies one step's worth of computed velocities, advancing
// positions by simple Euler integration. This runs only after every
// agent's new_velocity has been computed from step-entry state.
func (s *simulation) commit(velocities []vector2.Vector2, dt float64) {
	for i := range s.bodies {
		s.bodies[i].velocity = velocities[i]
		s.bodies[i].position = vector2.Add(s.bodies[i].position, vector2.Scale(velocities[i], dt))
	}
}

func (s *simulation) frames() []telemetry.AgentFrame {
	frames := make([]telemetry.AgentFrame, len(s.bodies))
	for i, b := range s.bodies {
		frames[i] = telemetry.AgentFrame{ID: b.id, Position: b.position, Velocity: b.velocity}
	}
	return frames
}

func (s *simulation) positionSnapshots() []schedule.PositionSnapshot {
	out := make([]schedule.PositionSnapshot, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = schedule.PositionSnapshot{Position: b.position, Velocity: b.velocity}
	}
	return out
}

func buildScenario(name string, agentCount int, cfg simconfig.Config) (*simulation, error) {
	switch name {
	case "headon":
		return headOnScenario(cfg.DefaultTau), nil
	case "perpendicular":
		return perpendicularScenario(cfg.DefaultTau), nil
	case "random":
		return randomScenario(agentCount, cfg.DefaultTau), nil
	default:
		return nil, fmt.Errorf("unknown scenario %q", name)
	}
}

// headOnScenario places two agents approaching each other along the
// same line, radius 0.5 each; they must pass without collision and
// reach the opposite side.
func headOnScenario(tau float64) *simulation {
	// A tiny perpendicular offset breaks the midline tie a perfectly
	// symmetric head-on approach would otherwise deadlock on.
	return &simulation{
		tau: tau,
		bodies: []body{
			{id: "a", position: vector2.New(-5, 0.01), velocity: vector2.New(1, 0), goal: vector2.New(5, 0), radius: 0.5, maxSpeed: 1},
			{id: "b", position: vector2.New(5, -0.01), velocity: vector2.New(-1, 0), goal: vector2.New(-5, 0), radius: 0.5, maxSpeed: 1},
		},
	}
}

// perpendicularScenario has one agent cross the other's path at a
// right angle.
func perpendicularScenario(tau float64) *simulation {
	return &simulation{
		tau: tau,
		bodies: []body{
			{id: "a", position: vector2.New(-5, 0), velocity: vector2.New(1, 0), goal: vector2.New(5, 0), radius: 0.5, maxSpeed: 1},
			{id: "b", position: vector2.New(0, -5), velocity: vector2.New(0, 1), goal: vector2.New(0, 5), radius: 0.5, maxSpeed: 1},
		},
	}
}

// randomScenario places n agents evenly around a circle, each heading
// for the antipodal point — a classic ORCA stress scenario where every
// agent's direct path passes through the center.
func randomScenario(n int, tau float64) *simulation {
	const ringRadius = 10.0
	bodies := make([]body, n)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pos := vector2.New(ringRadius*math.Cos(theta), ringRadius*math.Sin(theta))
		goal := vector2.Neg(pos)
		jitter := vector2.New(rng.Float64()*0.01, rng.Float64()*0.01)
		bodies[i] = body{
			id:       fmt.Sprintf("agent-%d", i),
			position: vector2.Add(pos, jitter),
			velocity: vector2.Vector2{},
			goal:     goal,
			radius:   0.5,
			maxSpeed: 1.5,
		}
	}
	return &simulation{bodies: bodies, tau: tau}
}
