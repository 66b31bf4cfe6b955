package measure

import (
	"time"

	"github.com/wiltonos/lemniscate/internal/temporal"
)

// #region observation

// SourceID names an observation producer (an agent, a service, a sensor).
type SourceID string

// Kind is the observation payload type.
type Kind string

const (
	KindVector Kind = "vector"
	KindPhase  Kind = "phase"
	KindOutput Kind = "output"
)

// observation is one recorded data point. Exactly one payload field is set,
// selected by Kind.
type observation struct {
	Kind   Kind
	At     time.Time
	Vector []float64
	Phase  float64
	Output string
}

// #endregion observation

// #region measurement

// Method names the similarity computation that produced a measurement.
type Method string

const (
	MethodVectorSimilarity Method = "vector_similarity"
	MethodPhaseSync        Method = "phase_synchronization"
	MethodOutputAgreement  Method = "output_agreement"
)

// Measurement is a derived coherence value for one scale.
type Measurement struct {
	Value      float64 // ∈ [0,1]
	Method     Method
	Scale      temporal.Scale
	At         time.Time
	SampleSize int
	Confidence float64
}

// #endregion measurement

// #region config

// Config bounds observation retention and measurement recency.
type Config struct {
	Window     time.Duration // only observations this recent enter a measurement
	RingCap    int           // max observations retained per (source, scale)
	HistoryCap int           // max retained measurements per scale
}

// DefaultConfig returns the standard measurement parameters.
func DefaultConfig() Config {
	return Config{
		Window:     60 * time.Second,
		RingCap:    256,
		HistoryCap: 512,
	}
}

// #endregion config

// #region attractor

// Trend classifies movement relative to an attractor over recent history.
type Trend string

const (
	TrendConverging Trend = "converging"
	TrendDiverging  Trend = "diverging"
	TrendStable     Trend = "stable"
)

// AttractorReport describes the nearest attractor and the trend toward it.
type AttractorReport struct {
	Scale       temporal.Scale
	Attractor   float64 // the nearer of the two fixed attractors
	Distance    float64 // latest measurement's distance to it
	Trend       Trend
	Approaching bool // converging AND within the approach radius
}

// #endregion attractor
