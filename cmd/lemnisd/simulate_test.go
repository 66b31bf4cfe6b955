package main

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/wiltonos/lemniscate/internal/engine"
	"github.com/wiltonos/lemniscate/internal/measure"
	"github.com/wiltonos/lemniscate/internal/temporal"
)

func TestRenderSnapshot(t *testing.T) {
	snap := engine.Snapshot{
		Cycle:        42,
		DominantMode: temporal.ModeStability,
		Coherence:    0.7421,
		QCTF:         0.8012,
		HistoryLen:   42,
		Scales: map[temporal.Scale]engine.ScaleStatus{
			temporal.ScaleMicro: {
				Mode:       temporal.ModeStability,
				TargetMode: temporal.ModeStability,
				Coherence:  0.75,
				Attractor: &measure.AttractorReport{
					Scale:       temporal.ScaleMicro,
					Attractor:   temporal.StabilityCoherence,
					Distance:    0.01,
					Trend:       measure.TrendConverging,
					Approaching: true,
				},
			},
			temporal.ScaleMeso: {
				Mode:               temporal.ModeTransition,
				TargetMode:         temporal.ModeExploration,
				Coherence:          0.51,
				TransitionProgress: 0.48,
			},
			temporal.ScaleMacro: {
				Mode:       temporal.ModeExploration,
				TargetMode: temporal.ModeExploration,
				Coherence:  0.2494,
			},
		},
	}

	var buf bytes.Buffer
	renderSnapshot(&buf, snap)

	g := goldie.New(t)
	g.Assert(t, "snapshot", buf.Bytes())
}
