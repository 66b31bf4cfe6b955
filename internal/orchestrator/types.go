package orchestrator

import (
	"time"

	"github.com/wiltonos/lemniscate/internal/temporal"
)

// #region path

// PathKind selects how a transition approaches its target value.
type PathKind string

const (
	PathDirect      PathKind = "direct"      // single step to the target
	PathDiagonal    PathKind = "diagonal"    // linear waypoints
	PathOscillating PathKind = "oscillating" // linear waypoints with a sine perturbation
)

// TransitionPlan is a generated sequence of coherence waypoints for one
// scale. Waypoints end exactly at To.
type TransitionPlan struct {
	Scale     temporal.Scale
	Kind      PathKind
	From      float64
	To        float64
	Waypoints []float64
}

// activePlan tracks progress through a plan's waypoints.
type activePlan struct {
	plan TransitionPlan
	next int
}

// #endregion path

// #region superposition

// component is one weighted partial input to a scale's superposition.
type component struct {
	value  float64
	weight float64
}

// CollapseEvent records a forced resolution of all superposed scales.
type CollapseEvent struct {
	Trigger string
	At      time.Time
	Values  map[temporal.Scale]float64
}

// #endregion superposition

// #region config

// Config holds path-generation and superposition parameters.
type Config struct {
	DiagonalSteps  int     // waypoint count for diagonal paths
	OscillateSteps int     // waypoint count for oscillating paths
	OscillateAmp   float64 // sine perturbation amplitude
	OscillateTurns float64 // full sine periods along an oscillating path
}

// DefaultConfig returns the standard orchestrator parameters.
func DefaultConfig() Config {
	return Config{
		DiagonalSteps:  8,
		OscillateSteps: 16,
		OscillateAmp:   0.05,
		OscillateTurns: 2,
	}
}

// #endregion config
