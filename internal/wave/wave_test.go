package wave

import (
	"math"
	"testing"

	"github.com/wiltonos/lemniscate/internal/temporal"
)

// rawVariance recomputes the unclamped harmonic sum at a given phase.
func rawVariance(c Config, phase float64) float64 {
	return c.Amplitude1*math.Sin(phase) +
		c.Amplitude2*math.Sin(2*phase+c.PhaseShift) +
		c.Amplitude3*math.Sin(3*phase+2*c.PhaseShift)
}

func TestStabilityFloor(t *testing.T) {
	cfg := DefaultConfig()
	floor := temporal.StabilityCoherence - cfg.MaxStabilityVariation

	for base := 0.0; base <= 1.0; base += 0.01 {
		w := NewWave(cfg)
		w.SetMode(temporal.ModeStability)
		for i := 0; i < 200; i++ {
			variance := rawVariance(cfg, w.Phase())
			got := w.Apply(base)
			if variance < 0 && got < floor-1e-12 {
				t.Fatalf("base=%.2f phase step %d: %.6f below stability floor %.6f", base, i, got, floor)
			}
			if got > 1 {
				t.Fatalf("base=%.2f: %.6f above 1", base, got)
			}
		}
	}
}

func TestExplorationCeiling(t *testing.T) {
	cfg := DefaultConfig()
	ceiling := temporal.ExplorationCoherence + cfg.MaxExplorationVariation

	for base := 0.0; base <= 1.0; base += 0.01 {
		w := NewWave(cfg)
		w.SetMode(temporal.ModeExploration)
		for i := 0; i < 200; i++ {
			variance := rawVariance(cfg, w.Phase())
			got := w.Apply(base)
			if variance > 0 && got > ceiling+1e-12 {
				t.Fatalf("base=%.2f phase step %d: %.6f above exploration ceiling %.6f", base, i, got, ceiling)
			}
			if got < 0 {
				t.Fatalf("base=%.2f: %.6f below 0", base, got)
			}
		}
	}
}

func TestPhaseWraps(t *testing.T) {
	w := NewWave(DefaultConfig())
	for i := 0; i < 1000; i++ {
		w.Apply(0.5)
		if p := w.Phase(); p < 0 || p >= 2*math.Pi {
			t.Fatalf("phase %.6f out of [0, 2π)", p)
		}
	}
}

func TestDeterministic(t *testing.T) {
	a := NewWave(DefaultConfig())
	b := NewWave(DefaultConfig())
	for i := 0; i < 100; i++ {
		if va, vb := a.Apply(0.6), b.Apply(0.6); va != vb {
			t.Fatalf("step %d: %.9f != %.9f", i, va, vb)
		}
	}
}
