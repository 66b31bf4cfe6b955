// Package replay runs recorded observation sequences through a freshly
// built engine under a seeded random source and a manual clock, comparing
// results against per-step expectations.
package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string        `json:"description"`
	Seed        int64         `json:"seed"`
	Steps       []FixtureStep `json:"steps"`
}

// FixtureStep is one replay step: advance the engine, feed observations,
// then check expectations.
type FixtureStep struct {
	Cycles       int                  `json:"cycles"`
	Observations []FixtureObservation `json:"observations,omitempty"`
	Expect       *FixtureExpect       `json:"expect,omitempty"`
}

// FixtureObservation is one recorded observation. Exactly one payload field
// is meaningful, selected by Kind.
type FixtureObservation struct {
	Source string    `json:"source"`
	Scale  string    `json:"scale"`
	Kind   string    `json:"kind"` // "vector" | "phase" | "output"
	Vector []float64 `json:"vector,omitempty"`
	Phase  float64   `json:"phase,omitempty"`
	Output string    `json:"output,omitempty"`
}

// FixtureExpect captures what a step should have produced. Zero-valued
// fields are not checked.
type FixtureExpect struct {
	Scale        string   `json:"scale,omitempty"` // defaults to the step's last observed scale
	Measurement  *float64 `json:"measurement,omitempty"`
	Trend        string   `json:"trend,omitempty"`
	DominantMode string   `json:"dominant_mode,omitempty"`
	Tolerance    float64  `json:"tolerance,omitempty"` // defaults to 1e-6
}

// #endregion fixture-types

// #region fixture-io

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// WriteFixture writes a fixture as indented JSON.
func WriteFixture(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// #endregion fixture-io
