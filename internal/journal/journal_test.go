package journal

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiltonos/lemniscate/internal/measure"
	"github.com/wiltonos/lemniscate/internal/temporal"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := newTestStore(t)
	rec := SnapshotRecord{
		CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		DominantMode: temporal.ModeStability,
		Coherence:    0.7421,
		QCTF:         0.8011,
		ScaleCoherence: map[temporal.Scale]float64{
			temporal.ScaleMicro: 0.75,
			temporal.ScaleMeso:  0.6,
			temporal.ScaleMacro: 0.2494,
		},
		DetailJSON: `{"cycles":42}`,
	}

	id, err := s.SaveSnapshot(rec)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := s.GetSnapshot(id)
	require.NoError(t, err)
	assert.Equal(t, rec.DominantMode, got.DominantMode)
	assert.Equal(t, rec.Coherence, got.Coherence)
	assert.Equal(t, rec.QCTF, got.QCTF)
	assert.Equal(t, rec.ScaleCoherence, got.ScaleCoherence)
	assert.Equal(t, rec.DetailJSON, got.DetailJSON)
	assert.True(t, got.CreatedAt.Equal(rec.CreatedAt))
}

func TestListSnapshotsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := s.SaveSnapshot(SnapshotRecord{
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
			DominantMode:   temporal.ModeStability,
			Coherence:      float64(i) / 10,
			ScaleCoherence: map[temporal.Scale]float64{},
		})
		require.NoError(t, err)
	}
	got, err := s.ListSnapshots(3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 0.4, got[0].Coherence)
	assert.Equal(t, 0.2, got[2].Coherence)
}

func TestDecayWeightedCoherence(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	// Older snapshot one half-life before the newest: weight 0.5.
	for i, v := range []float64{0.2, 0.8} {
		_, err := s.SaveSnapshot(SnapshotRecord{
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
			DominantMode: temporal.ModeStability,
			ScaleCoherence: map[temporal.Scale]float64{
				temporal.ScaleMicro: v,
			},
		})
		require.NoError(t, err)
	}
	got, err := s.DecayWeightedCoherence(temporal.ScaleMicro, time.Hour)
	require.NoError(t, err)
	want := (0.8*1.0 + 0.2*0.5) / 1.5
	assert.InDelta(t, want, got, 1e-9)
}

func TestDecayWeightedCoherenceEmpty(t *testing.T) {
	s := newTestStore(t)
	got, err := s.DecayWeightedCoherence(temporal.ScaleMicro, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestMeasurements(t *testing.T) {
	s := newTestStore(t)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		err := s.SaveMeasurement(MeasurementRecord{
			Scale:      temporal.ScaleMicro,
			Method:     measure.MethodPhaseSync,
			Value:      float64(i) / 4,
			Confidence: 0.5,
			SampleSize: i + 2,
			CreatedAt:  at,
		})
		require.NoError(t, err)
	}
	require.NoError(t, s.SaveMeasurement(MeasurementRecord{
		Scale:     temporal.ScaleMeso,
		Method:    measure.MethodVectorSimilarity,
		Value:     0.9,
		CreatedAt: at,
	}))

	got, err := s.ListMeasurements(temporal.ScaleMicro, 10)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, 0.75, got[0].Value) // newest first
	assert.Equal(t, measure.MethodPhaseSync, got[0].Method)
	assert.Equal(t, 5, got[0].SampleSize)
}

func TestAttractorEvents(t *testing.T) {
	s := newTestStore(t)
	ev := AttractorEvent{
		Scale:       temporal.ScaleMacro,
		Attractor:   temporal.ExplorationCoherence,
		Trend:       measure.TrendConverging,
		Distance:    0.04,
		Approaching: true,
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.SaveAttractorEvent(ev))

	got, err := s.ListAttractorEvents(5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, ev.Scale, got[0].Scale)
	assert.Equal(t, ev.Trend, got[0].Trend)
	assert.True(t, got[0].Approaching)
	assert.True(t, math.Abs(got[0].Distance-0.04) < 1e-12)
}
