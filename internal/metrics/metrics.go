// Package metrics keeps rolling per-band metric series and computes the
// QCTF composite.
package metrics

import (
	"math"
	"math/rand"
	"time"
)

// #region sample

// Sample is one recorded metric observation.
type Sample struct {
	Value float64
	At    time.Time
}

type seriesKey struct {
	typ  Type
	band Band
}

// #endregion sample

// #region metrics

// Metrics is a rolling sample store per (type, band) pair. It is not safe
// for concurrent use; the engine serializes access.
type Metrics struct {
	config  Config
	rng     *rand.Rand
	clock   func() time.Time
	samples map[seriesKey][]Sample
	current map[seriesKey]float64
}

// NewMetrics creates a Metrics store. rng drives the probabilistic
// instant→meso/macro propagation; clock may be nil (defaults to time.Now).
func NewMetrics(config Config, rng *rand.Rand, clock func() time.Time) *Metrics {
	if clock == nil {
		clock = time.Now
	}
	return &Metrics{
		config:  config,
		rng:     rng,
		clock:   clock,
		samples: make(map[seriesKey][]Sample),
		current: make(map[seriesKey]float64),
	}
}

// #endregion metrics

// #region set

// Set records a value for a (type, band) series. Setting the instant band
// propagates a smoothed update to micro, and probabilistically to
// meso/macro, so band values are deterministic only under a seeded rng.
func (m *Metrics) Set(typ Type, band Band, value float64) {
	m.record(typ, band, value)
	if band != BandInstant {
		return
	}

	m.blend(typ, BandMicro, value, m.config.MicroWeight)
	if m.rng.Float64() < m.config.MesoChance {
		m.blend(typ, BandMeso, value, m.config.MesoWeight)
	}
	if m.rng.Float64() < m.config.MacroChance {
		m.blend(typ, BandMacro, value, m.config.MacroWeight)
	}
}

// Value returns the most recent value for a (type, band) series, or 0 when
// nothing has been recorded.
func (m *Metrics) Value(typ Type, band Band) float64 {
	return m.current[seriesKey{typ, band}]
}

// Samples returns a copy of the retained samples for a series.
func (m *Metrics) Samples(typ Type, band Band) []Sample {
	src := m.samples[seriesKey{typ, band}]
	out := make([]Sample, len(src))
	copy(out, src)
	return out
}

func (m *Metrics) blend(typ Type, band Band, value, weight float64) {
	key := seriesKey{typ, band}
	smoothed := m.current[key]*(1-weight) + value*weight
	m.record(typ, band, smoothed)
}

func (m *Metrics) record(typ Type, band Band, value float64) {
	key := seriesKey{typ, band}
	m.current[key] = value
	buf := append(m.samples[key], Sample{Value: value, At: m.clock()})
	if len(buf) > m.config.SampleCap {
		buf = buf[len(buf)-m.config.SampleCap:]
	}
	m.samples[key] = buf
}

// #endregion set

// #region qctf

// QCTF computes the composite coherence figure:
// coherence + GEF·QEAI·cos(θ)·0.1, where GEF grows with variant count,
// QEAI saturates with insight count, and θ is the UTC daily phase of at.
func QCTF(coherence float64, variantCount, insightCount int, at time.Time) float64 {
	gef := math.Log(float64(variantCount)+1) / math.Log(5)
	qeai := math.Min(1, math.Log(float64(insightCount)+1)/math.Log(1000))
	theta := dailyPhase(at)
	return coherence + gef*qeai*math.Cos(theta)*0.1
}

// dailyPhase maps the UTC time of day to [0, 2π).
func dailyPhase(at time.Time) float64 {
	utc := at.UTC()
	elapsed := time.Duration(utc.Hour())*time.Hour +
		time.Duration(utc.Minute())*time.Minute +
		time.Duration(utc.Second())*time.Second +
		time.Duration(utc.Nanosecond())
	return float64(elapsed) / float64(24*time.Hour) * 2 * math.Pi
}

// #endregion qctf
