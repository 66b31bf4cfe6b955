// Package config loads daemon configuration from YAML with LEMNIS_* env
// overrides, and can watch the file for goal changes at runtime.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wiltonos/lemniscate/internal/engine"
)

// #region types

// GoalConfig holds the two emphasis knobs applied at startup and on reload.
type GoalConfig struct {
	Innovation float64 `yaml:"innovation"`
	Stability  float64 `yaml:"stability"`
}

// Config is the daemon configuration.
type Config struct {
	CycleInterval time.Duration `yaml:"cycle_interval"`
	SnapshotEvery int           `yaml:"snapshot_every"`
	Seed          int64         `yaml:"seed"`
	JournalPath   string        `yaml:"journal_path"`
	TaskDir       string        `yaml:"task_dir"`
	GRPCAddr      string        `yaml:"grpc_addr"`
	LogLevel      string        `yaml:"log_level"`
	Goal          GoalConfig    `yaml:"goal"`
}

// Default returns the standard daemon configuration.
func Default() Config {
	return Config{
		CycleInterval: 100 * time.Millisecond,
		SnapshotEvery: 100,
		Seed:          1,
		JournalPath:   "lemniscate.db",
		TaskDir:       "lemniscate-tasks",
		GRPCAddr:      "localhost:50061",
		LogLevel:      "info",
	}
}

// #endregion types

// #region load

// Load builds a Config from defaults, an optional YAML file, and LEMNIS_*
// env overrides, in that order.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.JournalPath = envOr("LEMNIS_JOURNAL_PATH", cfg.JournalPath)
	cfg.TaskDir = envOr("LEMNIS_TASK_DIR", cfg.TaskDir)
	cfg.GRPCAddr = envOr("LEMNIS_GRPC_ADDR", cfg.GRPCAddr)
	cfg.LogLevel = envOr("LEMNIS_LOG_LEVEL", cfg.LogLevel)
	if v := os.Getenv("LEMNIS_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	if v := os.Getenv("LEMNIS_CYCLE_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.CycleInterval = d
		}
	}
}

func (c Config) validate() error {
	if c.CycleInterval <= 0 {
		return fmt.Errorf("cycle_interval must be positive, got %s", c.CycleInterval)
	}
	if c.SnapshotEvery < 0 {
		return fmt.Errorf("snapshot_every must not be negative, got %d", c.SnapshotEvery)
	}
	if c.Goal.Innovation < 0 || c.Goal.Innovation > 1 || c.Goal.Stability < 0 || c.Goal.Stability > 1 {
		return fmt.Errorf("goal emphasis out of [0,1]: %+v", c.Goal)
	}
	return nil
}

// EngineConfig projects the daemon config onto the engine defaults.
func (c Config) EngineConfig() engine.Config {
	ec := engine.DefaultConfig()
	ec.CycleInterval = c.CycleInterval
	ec.SnapshotEvery = c.SnapshotEvery
	ec.Seed = c.Seed
	return ec
}

// envOr reads an env var with a fallback.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion load
