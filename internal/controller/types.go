package controller

import (
	"github.com/wiltonos/lemniscate/internal/temporal"
)

// #region direction

// Direction records which attractor a transition is moving toward.
type Direction string

const (
	DirectionNone          Direction = "none"
	DirectionToStability   Direction = "to_stability"
	DirectionToExploration Direction = "to_exploration"
)

func directionFor(target temporal.Mode) Direction {
	if target == temporal.ModeStability {
		return DirectionToStability
	}
	return DirectionToExploration
}

// #endregion direction

// #region scale-state

// ScaleState is a read-only snapshot of one scale's state machine.
type ScaleState struct {
	Scale                  temporal.Scale
	CurrentMode            temporal.Mode
	TargetMode             temporal.Mode
	CurrentCoherence       float64
	TransitionProgress     float64
	TransitionDirection    Direction
	CycleCounter           int
	CyclesToNextTransition int
}

// scaleState is the mutable per-scale record. fromMode/fromCoherence pin the
// interpolation start; transitionCycles counts elapsed transition cycles.
type scaleState struct {
	scale                  temporal.Scale
	currentMode            temporal.Mode
	targetMode             temporal.Mode
	currentCoherence       float64
	transitionProgress     float64
	transitionDirection    Direction
	cycleCounter           int
	cyclesToNextTransition int

	fromMode         temporal.Mode
	fromCoherence    float64
	transitionCycles int
	nextTarget       temporal.Mode
}

func (s *scaleState) snapshot() ScaleState {
	return ScaleState{
		Scale:                  s.scale,
		CurrentMode:            s.currentMode,
		TargetMode:             s.targetMode,
		CurrentCoherence:       s.currentCoherence,
		TransitionProgress:     s.transitionProgress,
		TransitionDirection:    s.transitionDirection,
		CycleCounter:           s.cycleCounter,
		CyclesToNextTransition: s.cyclesToNextTransition,
	}
}

// #endregion scale-state

// #region config

// Config holds the state-machine timing parameters.
type Config struct {
	BaseCycles       map[temporal.Scale]int // mean dwell per scale, in cycles
	TransitionCycles map[temporal.Scale]int // fixed transition duration per scale
	DwellJitter      float64                // dwell spread: base·(1 ± jitter)
	FlipBias         float64                // probability the next target flips the mode
	HistoryCap       int                    // history ring bound
}

// DefaultConfig returns the standard controller parameters.
func DefaultConfig() Config {
	return Config{
		BaseCycles:       temporal.BaseCycles,
		TransitionCycles: temporal.TransitionCycles,
		DwellJitter:      0.3,
		FlipBias:         0.7,
		HistoryCap:       1000,
	}
}

// #endregion config
