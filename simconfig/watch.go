package simconfig

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Load reads path into a fresh viper.Viper and builds a Config from it.
// path's extension selects the decoder (yaml, json, toml, ...).
func Load(path string, opts ...Option) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("simconfig: %s: %w", path, ErrConfigNotFound)
		}
		return Config{}, fmt.Errorf("simconfig: reading %s: %w", path, err)
	}
	return New(v, opts...)
}

// Watch reloads Config from path whenever the underlying file changes,
// invoking onChange with each successfully revalidated Config. Changes
// only ever affect the *next* step a host schedules; they never reach
// into a Step already in flight, preserving the core's per-step
// read-only snapshot discipline.
func Watch(path string, onChange func(Config), opts ...Option) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("simconfig: %s: %w", path, ErrConfigNotFound)
		}
		return nil, fmt.Errorf("simconfig: reading %s: %w", path, err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := New(v, opts...)
		if err != nil {
			// A bad edit mid-flight must not crash a running
			// simulation; keep serving the last-known-good Config.
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()

	return v, nil
}
