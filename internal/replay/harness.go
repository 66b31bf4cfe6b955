package replay

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/wiltonos/lemniscate/internal/engine"
	"github.com/wiltonos/lemniscate/internal/measure"
	"github.com/wiltonos/lemniscate/internal/temporal"
)

// #region types

// StepResult captures the outcome of replaying one fixture step.
type StepResult struct {
	Index        int      `json:"index"`
	Measured     *float64 `json:"measured,omitempty"`
	Trend        string   `json:"trend,omitempty"`
	DominantMode string   `json:"dominant_mode"`
	Coherence    float64  `json:"coherence"`
	Match        bool     `json:"match"`
	Diffs        []string `json:"diffs,omitempty"`
}

// Summary aggregates a replay run.
type Summary struct {
	Description string `json:"description"`
	Steps       int    `json:"steps"`
	Matches     int    `json:"matches"`
	Divergences int    `json:"divergences"`
}

// #endregion types

// #region manual-clock

// manualClock is a deterministic time source for replay runs.
type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time          { return c.now }
func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// replayEpoch pins every replay run to the same wall clock, so the QCTF
// daily phase term is reproducible.
var replayEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// observationSpacing is the simulated gap between observations in a step.
const observationSpacing = 10 * time.Millisecond

// #endregion manual-clock

// #region run

// Run replays a fixture through a fresh engine built from the fixture's
// seed. The engine clock is manual, so identical fixtures yield identical
// results.
func Run(f *Fixture) (Summary, []StepResult, error) {
	cfg := engine.DefaultConfig()
	cfg.Seed = f.Seed
	cfg.SnapshotEvery = 0

	clk := &manualClock{now: replayEpoch}
	eng := engine.New(cfg, zap.NewNop(), engine.WithClock(clk.Now))

	summary := Summary{Description: f.Description, Steps: len(f.Steps)}
	results := make([]StepResult, 0, len(f.Steps))

	for i, step := range f.Steps {
		for c := 0; c < step.Cycles; c++ {
			clk.Advance(cfg.CycleInterval)
			eng.ProcessCycle()
		}

		var lastMeasurement *measure.Measurement
		var lastScale temporal.Scale
		for _, obs := range step.Observations {
			clk.Advance(observationSpacing)
			m, scale, err := apply(eng, obs)
			if err != nil {
				return Summary{}, nil, fmt.Errorf("step %d: %w", i, err)
			}
			lastScale = scale
			if m != nil {
				lastMeasurement = m
			}
		}

		res := evaluate(i, eng, step.Expect, lastMeasurement, lastScale)
		if res.Match {
			summary.Matches++
		} else {
			summary.Divergences++
		}
		results = append(results, res)
	}

	return summary, results, nil
}

// apply feeds one fixture observation into the engine.
func apply(eng *engine.Engine, obs FixtureObservation) (*measure.Measurement, temporal.Scale, error) {
	scale, err := temporal.ParseScale(obs.Scale)
	if err != nil {
		return nil, "", err
	}
	source := measure.SourceID(obs.Source)
	switch obs.Kind {
	case "vector":
		m, err := eng.ObserveVector(source, scale, obs.Vector)
		return m, scale, err
	case "phase":
		m, err := eng.ObservePhase(source, scale, obs.Phase)
		return m, scale, err
	case "output":
		m, err := eng.ObserveOutput(source, scale, obs.Output)
		return m, scale, err
	}
	return nil, "", fmt.Errorf("unknown observation kind %q", obs.Kind)
}

// evaluate checks a step's expectations against the engine state.
func evaluate(index int, eng *engine.Engine, expect *FixtureExpect, m *measure.Measurement, lastScale temporal.Scale) StepResult {
	snap := eng.Snapshot()
	res := StepResult{
		Index:        index,
		DominantMode: string(snap.DominantMode),
		Coherence:    snap.Coherence,
		Match:        true,
	}
	if m != nil {
		v := m.Value
		res.Measured = &v
	}

	scale := lastScale
	if expect != nil && expect.Scale != "" {
		scale = temporal.Scale(expect.Scale)
	}
	if scale != "" {
		if st, ok := snap.Scales[scale]; ok && st.Attractor != nil {
			res.Trend = string(st.Attractor.Trend)
		}
	}

	if expect == nil {
		return res
	}
	tolerance := expect.Tolerance
	if tolerance == 0 {
		tolerance = 1e-6
	}

	diff := func(format string, args ...any) {
		res.Match = false
		res.Diffs = append(res.Diffs, fmt.Sprintf(format, args...))
	}

	if expect.Measurement != nil {
		if res.Measured == nil {
			diff("expected measurement %.6f, none recorded", *expect.Measurement)
		} else if math.Abs(*res.Measured-*expect.Measurement) > tolerance {
			diff("measurement %.6f differs from expected %.6f", *res.Measured, *expect.Measurement)
		}
	}
	if expect.Trend != "" && res.Trend != expect.Trend {
		diff("trend %q differs from expected %q", res.Trend, expect.Trend)
	}
	if expect.DominantMode != "" && res.DominantMode != expect.DominantMode {
		diff("dominant mode %q differs from expected %q", res.DominantMode, expect.DominantMode)
	}
	return res
}

// #endregion run
