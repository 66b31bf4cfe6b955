// Package wave implements the Brazilian Wave protocol: a deterministic
// three-harmonic oscillator that perturbs a base coherence value without
// letting it escape the active mode's attractor band.
package wave

import (
	"math"

	"github.com/wiltonos/lemniscate/internal/temporal"
)

// #region config

// Config holds the harmonic amplitudes and clamp bounds for a Wave.
type Config struct {
	Amplitude1 float64 // fundamental
	Amplitude2 float64 // second harmonic
	Amplitude3 float64 // third harmonic
	PhaseShift float64 // delta applied to higher harmonics, radians
	PhaseStep  float64 // phase advance per Apply call, radians

	MaxStabilityVariation   float64 // widest allowed dip below the stability attractor
	MaxExplorationVariation float64 // widest allowed rise above the exploration attractor
}

// DefaultConfig returns the standard wave parameters.
func DefaultConfig() Config {
	return Config{
		Amplitude1:              0.05,
		Amplitude2:              0.025,
		Amplitude3:              0.0125,
		PhaseShift:              math.Pi / 4,
		PhaseStep:               0.1,
		MaxStabilityVariation:   0.0494,
		MaxExplorationVariation: 0.0494,
	}
}

// #endregion config

// #region wave

// Wave is a stateful oscillator. It is not safe for concurrent use;
// the engine serializes all calls.
type Wave struct {
	config Config
	mode   temporal.Mode
	phase  float64
}

// NewWave creates a Wave starting in stability mode at phase 0.
func NewWave(config Config) *Wave {
	return &Wave{config: config, mode: temporal.ModeStability}
}

// SetMode switches the clamp regime. Transition is treated as no clamp
// beyond the final [0,1] bound.
func (w *Wave) SetMode(m temporal.Mode) {
	w.mode = m
}

// Mode returns the current clamp regime.
func (w *Wave) Mode() temporal.Mode {
	return w.mode
}

// Phase returns the current phase accumulator, in [0, 2π).
func (w *Wave) Phase() float64 {
	return w.phase
}

// #endregion wave

// #region apply

// Apply perturbs base with the summed harmonics, clamps the excursion so it
// cannot cross the mode's attractor band in the away direction, and bounds
// the result to [0,1].
func (w *Wave) Apply(base float64) float64 {
	c := w.config
	variance := c.Amplitude1*math.Sin(w.phase) +
		c.Amplitude2*math.Sin(2*w.phase+c.PhaseShift) +
		c.Amplitude3*math.Sin(3*w.phase+2*c.PhaseShift)

	w.phase = math.Mod(w.phase+c.PhaseStep, 2*math.Pi)

	value := base + variance
	switch w.mode {
	case temporal.ModeStability:
		// Negative excursions may not drop below the stability floor.
		if variance < 0 {
			floor := temporal.StabilityCoherence - c.MaxStabilityVariation
			if value < floor {
				value = floor
			}
		}
	case temporal.ModeExploration:
		// Positive excursions may not rise above the exploration ceiling.
		if variance > 0 {
			ceiling := temporal.ExplorationCoherence + c.MaxExplorationVariation
			if value > ceiling {
				value = ceiling
			}
		}
	}

	return clamp01(value)
}

// #endregion apply

// #region helpers

// clamp01 restricts v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion helpers
