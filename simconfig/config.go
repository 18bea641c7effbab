package simconfig

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the tunable defaults a hosted simulation run applies
// when a Snapshot does not carry its own overrides.
type Config struct {
	Epsilon      float64
	DefaultTau   float64
	DefaultDt    float64
	MaxNeighbors int
	Workers      int

	TelemetryAddr string
	StoreDSN      string
	SnapshotCron  string
}

// Option overrides a Config field after defaults and viper values have
// been merged in. Applied in the order given to New.
type Option func(*Config)

// WithEpsilon overrides the numerical tolerance.
func WithEpsilon(eps float64) Option {
	return func(c *Config) { c.Epsilon = eps }
}

// WithHorizons overrides the default neighbor/obstacle-independent time
// horizon and simulation time step used when a caller does not supply
// its own.
func WithHorizons(tau, dt float64) Option {
	return func(c *Config) { c.DefaultTau = tau; c.DefaultDt = dt }
}

// WithWorkers overrides the per-step fan-out worker count.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

// WithTelemetryAddr overrides the telemetry HTTP/websocket bind address.
func WithTelemetryAddr(addr string) Option {
	return func(c *Config) { c.TelemetryAddr = addr }
}

// defaults returns the built-in baseline before any option or
// viper-sourced override is applied.
func defaults() Config {
	return Config{
		Epsilon:      1e-6,
		DefaultTau:   2.0,
		DefaultDt:    0.1,
		MaxNeighbors: 10,
		Workers:      4,
		TelemetryAddr: "127.0.0.1:8088",
		SnapshotCron:  "@every 1m",
	}
}

// New builds a Config: defaults, then any values present in v (if
// non-nil), then opts, applied deterministically in that order so the
// same inputs always produce the same Config.
func New(v *viper.Viper, opts ...Option) (Config, error) {
	cfg := defaults()

	if v != nil {
		applyViper(&cfg, v)
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyViper copies any keys present in v onto cfg, leaving fields
// untouched when the key is absent so defaults survive a partial file.
func applyViper(cfg *Config, v *viper.Viper) {
	if v.IsSet("epsilon") {
		cfg.Epsilon = v.GetFloat64("epsilon")
	}
	if v.IsSet("default_tau") {
		cfg.DefaultTau = v.GetFloat64("default_tau")
	}
	if v.IsSet("default_dt") {
		cfg.DefaultDt = v.GetFloat64("default_dt")
	}
	if v.IsSet("max_neighbors") {
		cfg.MaxNeighbors = v.GetInt("max_neighbors")
	}
	if v.IsSet("workers") {
		cfg.Workers = v.GetInt("workers")
	}
	if v.IsSet("telemetry_addr") {
		cfg.TelemetryAddr = v.GetString("telemetry_addr")
	}
	if v.IsSet("store_dsn") {
		cfg.StoreDSN = v.GetString("store_dsn")
	}
	if v.IsSet("snapshot_cron") {
		cfg.SnapshotCron = v.GetString("snapshot_cron")
	}
}

// Validate checks that Config holds a sane combination of values.
func (c Config) Validate() error {
	if c.Epsilon <= 0 {
		return ErrInvalidEpsilon
	}
	if c.DefaultTau <= 0 || c.DefaultDt <= 0 {
		return ErrInvalidHorizon
	}
	if c.Workers <= 0 {
		return fmt.Errorf("simconfig: %w", ErrInvalidWorkerCount)
	}
	return nil
}
