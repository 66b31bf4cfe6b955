package main

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wiltonos/lemniscate/internal/engine"
	"github.com/wiltonos/lemniscate/internal/journal"
	"github.com/wiltonos/lemniscate/internal/measure"
	"github.com/wiltonos/lemniscate/internal/replay"
	"github.com/wiltonos/lemniscate/internal/temporal"
)

func TestBuildFixture(t *testing.T) {
	recs := []journal.MeasurementRecord{
		{Scale: temporal.ScaleMicro, Method: measure.MethodPhaseSync, Value: 0.5, CreatedAt: time.Now()},
		{Scale: temporal.ScaleMicro, Method: measure.MethodPhaseSync, Value: 1.0, CreatedAt: time.Now()},
	}

	f := buildFixture(temporal.ScaleMicro, recs, 7)
	require.Equal(t, int64(7), f.Seed)
	require.Len(t, f.Steps, 2)

	windowCycles := int(measure.DefaultConfig().Window / engine.DefaultConfig().CycleInterval)
	for i, step := range f.Steps {
		require.Greater(t, step.Cycles, windowCycles, "step %d must outlast the measurement window", i)
		require.Len(t, step.Observations, 2)

		a, b := step.Observations[0], step.Observations[1]
		require.Equal(t, "phase", a.Kind)
		require.InDelta(t, a.Phase, -b.Phase, 1e-12)

		require.NotNil(t, step.Expect)
		require.NotNil(t, step.Expect.Measurement)
		want := recs[i].Value
		require.Equal(t, want, *step.Expect.Measurement)
		// The phase pair's order parameter reproduces the value.
		require.InDelta(t, want, math.Cos(a.Phase), 1e-9)
	}
}

func TestBuildFixtureClampsValue(t *testing.T) {
	recs := []journal.MeasurementRecord{{Scale: temporal.ScaleMeso, Value: 1.2}}
	f := buildFixture(temporal.ScaleMeso, recs, 1)
	require.Len(t, f.Steps, 1)
	require.Equal(t, 1.0, *f.Steps[0].Expect.Measurement)
	require.Equal(t, 0.0, f.Steps[0].Observations[0].Phase)
}

func TestExportedFixtureReplaysClean(t *testing.T) {
	recs := []journal.MeasurementRecord{
		{Scale: temporal.ScaleMicro, Value: 0.25},
		{Scale: temporal.ScaleMicro, Value: 0.75},
	}
	f := buildFixture(temporal.ScaleMicro, recs, 3)

	summary, results, err := replay.Run(f)
	require.NoError(t, err)
	require.Equal(t, len(recs), summary.Steps)
	require.Zero(t, summary.Divergences, "results: %+v", results)
}
