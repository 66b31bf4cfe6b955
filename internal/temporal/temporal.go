// Package temporal defines the three time horizons the engine operates on
// and the coherence constants shared by every other package.
package temporal

import (
	"fmt"
	"time"
)

// #region constants

// StabilityCoherence is the universal stability attractor.
const StabilityCoherence = 0.7500

// ExplorationCoherence is the universal exploration attractor.
// The ratio StabilityCoherence/ExplorationCoherence ≈ 3.007 is documented,
// not enforced at runtime.
const ExplorationCoherence = 0.2494

// #endregion constants

// #region scale

// Scale identifies one of the three time horizons.
type Scale string

const (
	ScaleMicro Scale = "micro"
	ScaleMeso  Scale = "meso"
	ScaleMacro Scale = "macro"
)

// Scales returns all scales in canonical order (micro, meso, macro).
func Scales() []Scale {
	return []Scale{ScaleMicro, ScaleMeso, ScaleMacro}
}

// ParseScale converts a string to a Scale.
func ParseScale(s string) (Scale, error) {
	switch Scale(s) {
	case ScaleMicro, ScaleMeso, ScaleMacro:
		return Scale(s), nil
	}
	return "", fmt.Errorf("unknown scale %q", s)
}

// #endregion scale

// #region mode

// Mode is the coherence regime a scale is currently in.
type Mode string

const (
	ModeStability   Mode = "stability"
	ModeExploration Mode = "exploration"
	ModeTransition  Mode = "transition"
)

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeStability, ModeExploration, ModeTransition:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// TargetCoherence returns the attractor value for a definite mode.
// Transition has no attractor of its own and maps to the midpoint.
func TargetCoherence(m Mode) float64 {
	switch m {
	case ModeStability:
		return StabilityCoherence
	case ModeExploration:
		return ExplorationCoherence
	}
	return (StabilityCoherence + ExplorationCoherence) / 2
}

// Flip returns the opposite definite mode. Transition flips to stability.
func Flip(m Mode) Mode {
	if m == ModeStability {
		return ModeExploration
	}
	return ModeStability
}

// #endregion mode

// #region profile

// Profile describes a scale's human duration range and default target coherence.
type Profile struct {
	Scale           Scale
	MinDuration     time.Duration
	MaxDuration     time.Duration
	TargetCoherence float64
}

var profiles = map[Scale]Profile{
	ScaleMicro: {
		Scale:           ScaleMicro,
		MinDuration:     time.Second,
		MaxDuration:     10 * time.Minute,
		TargetCoherence: StabilityCoherence,
	},
	ScaleMeso: {
		Scale:           ScaleMeso,
		MinDuration:     time.Hour,
		MaxDuration:     72 * time.Hour,
		TargetCoherence: StabilityCoherence,
	},
	ScaleMacro: {
		Scale:           ScaleMacro,
		MinDuration:     7 * 24 * time.Hour,
		MaxDuration:     90 * 24 * time.Hour,
		TargetCoherence: ExplorationCoherence,
	},
}

// ProfileFor returns the static profile for a scale.
func ProfileFor(s Scale) Profile {
	return profiles[s]
}

// #endregion profile

// #region tables

// BaseCycles is the mean dwell time per scale, in processing cycles.
var BaseCycles = map[Scale]int{
	ScaleMicro: 20,
	ScaleMeso:  100,
	ScaleMacro: 500,
}

// TransitionCycles is the fixed transition duration per scale, in cycles.
var TransitionCycles = map[Scale]int{
	ScaleMicro: 10,
	ScaleMeso:  50,
	ScaleMacro: 250,
}

// DominantWeight is the per-scale weight used in the dominant-mode vote.
var DominantWeight = map[Scale]float64{
	ScaleMicro: 0.6,
	ScaleMeso:  0.3,
	ScaleMacro: 0.1,
}

// SyncInfluence is the per-scale pull strength used when synchronizing
// all scales toward a dominant scale's value.
var SyncInfluence = map[Scale]float64{
	ScaleMicro: 0.7,
	ScaleMeso:  0.5,
	ScaleMacro: 0.3,
}

// #endregion tables
