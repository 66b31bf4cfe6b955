// Package controller implements the per-scale lemniscate state machine:
// each temporal scale cycles between stability and exploration through
// cubic-eased transitions, driven by randomized dwell times or explicit
// transition requests.
package controller

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/wiltonos/lemniscate/internal/history"
	"github.com/wiltonos/lemniscate/internal/temporal"
)

// #region controller

// Controller drives one state machine per temporal scale and records a
// history entry every cycle. Not safe for concurrent use; the engine
// serializes access.
type Controller struct {
	config  Config
	rng     *rand.Rand
	clock   func() time.Time
	states  map[temporal.Scale]*scaleState
	history *history.Ring
}

// NewController creates a controller with every scale starting in stability
// mode. rng drives dwell randomization; clock may be nil (time.Now).
func NewController(config Config, rng *rand.Rand, clock func() time.Time) *Controller {
	if clock == nil {
		clock = time.Now
	}
	c := &Controller{
		config:  config,
		rng:     rng,
		clock:   clock,
		states:  make(map[temporal.Scale]*scaleState),
		history: history.NewRing(config.HistoryCap),
	}
	for _, scale := range temporal.Scales() {
		st := &scaleState{
			scale:               scale,
			currentMode:         temporal.ModeStability,
			targetMode:          temporal.ModeStability,
			currentCoherence:    temporal.StabilityCoherence,
			transitionDirection: DirectionNone,
			fromMode:            temporal.ModeStability,
			nextTarget:          temporal.ModeExploration,
		}
		st.cyclesToNextTransition = c.randomDwell(scale)
		c.states[scale] = st
	}
	return c
}

// randomDwell draws a dwell time from base·(1 ± jitter).
func (c *Controller) randomDwell(scale temporal.Scale) int {
	base := float64(c.config.BaseCycles[scale])
	jitter := c.config.DwellJitter
	d := int(base * (1 - jitter + 2*jitter*c.rng.Float64()))
	if d < 1 {
		d = 1
	}
	return d
}

// chooseNextTarget flips the mode with FlipBias probability.
func (c *Controller) chooseNextTarget(current temporal.Mode) temporal.Mode {
	if c.rng.Float64() < c.config.FlipBias {
		return temporal.Flip(current)
	}
	return current
}

// #endregion controller

// #region tick

// Tick advances every scale one processing cycle and appends one history
// entry.
func (c *Controller) Tick() {
	for _, scale := range temporal.Scales() {
		c.tickScale(c.states[scale])
	}

	c.history.Append(history.Entry{
		At:           c.clock(),
		Coherence:    c.CompositeCoherence(),
		DominantMode: c.DominantMode(),
		Scales:       c.scaleSnapshots(),
	})
}

func (c *Controller) tickScale(st *scaleState) {
	st.cycleCounter++

	if st.currentMode == temporal.ModeTransition {
		st.transitionCycles++
		duration := c.config.TransitionCycles[st.scale]
		t := float64(st.transitionCycles) / float64(duration)
		if t > 1 {
			t = 1
		}
		st.transitionProgress = t
		eased := cubicEase(t)
		target := temporal.TargetCoherence(st.targetMode)
		st.currentCoherence = st.fromCoherence + (target-st.fromCoherence)*eased

		if st.transitionCycles >= duration {
			st.currentMode = st.targetMode
			st.fromMode = st.targetMode
			st.currentCoherence = target
			st.transitionProgress = 1
			st.transitionDirection = DirectionNone
			st.cyclesToNextTransition = c.randomDwell(st.scale)
			st.nextTarget = c.chooseNextTarget(st.currentMode)
		}
		return
	}

	st.cyclesToNextTransition--
	if st.cyclesToNextTransition > 0 {
		return
	}
	if st.nextTarget == st.currentMode {
		// The biased draw chose to stay put: dwell again.
		st.cyclesToNextTransition = c.randomDwell(st.scale)
		st.nextTarget = c.chooseNextTarget(st.currentMode)
		return
	}
	c.beginTransition(st, st.nextTarget)
}

func (c *Controller) beginTransition(st *scaleState, target temporal.Mode) {
	st.fromMode = st.currentMode
	st.fromCoherence = st.currentCoherence
	st.currentMode = temporal.ModeTransition
	st.targetMode = target
	st.transitionProgress = 0
	st.transitionCycles = 0
	st.transitionDirection = directionFor(target)
}

// cubicEase maps linear progress through a symmetric cubic: 4t³ for the
// first half, mirrored for the second.
func cubicEase(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 1 - t
	return 1 - 4*u*u*u
}

// #endregion tick

// #region requests

// RequestTransition starts a transition for a scale immediately. Requesting
// the mode a scale is already settled in is a no-op.
func (c *Controller) RequestTransition(scale temporal.Scale, target temporal.Mode) error {
	if target != temporal.ModeStability && target != temporal.ModeExploration {
		return fmt.Errorf("transition target must be a definite mode, got %q", target)
	}
	st, ok := c.states[scale]
	if !ok {
		return fmt.Errorf("unknown scale %q", scale)
	}
	if st.currentMode == target {
		return nil
	}
	if st.currentMode == temporal.ModeTransition && st.targetMode == target {
		return nil
	}
	c.beginTransition(st, target)
	return nil
}

// SetGoal translates two continuous emphasis knobs (each 0–1) into discrete
// transition requests. The stronger knob wins; its strength tier decides how
// many scales move: weak touches micro, moderate adds meso, strong adds
// macro.
func (c *Controller) SetGoal(innovation, stability float64) {
	target := temporal.ModeExploration
	strength := innovation
	if stability > innovation {
		target = temporal.ModeStability
		strength = stability
	}
	if strength <= 0 {
		return
	}

	scales := []temporal.Scale{temporal.ScaleMicro}
	if strength > 1.0/3.0 {
		scales = append(scales, temporal.ScaleMeso)
	}
	if strength > 2.0/3.0 {
		scales = append(scales, temporal.ScaleMacro)
	}
	for _, scale := range scales {
		// Targets are definite modes for known scales: no error path.
		_ = c.RequestTransition(scale, target)
	}
}

// #endregion requests

// #region views

// State returns a snapshot of one scale's state machine.
func (c *Controller) State(scale temporal.Scale) ScaleState {
	return c.states[scale].snapshot()
}

// Coherence returns the current coherence of one scale.
func (c *Controller) Coherence(scale temporal.Scale) float64 {
	return c.states[scale].currentCoherence
}

// CompositeCoherence is the dominance-weighted average coherence.
func (c *Controller) CompositeCoherence() float64 {
	var sum, weights float64
	for _, scale := range temporal.Scales() {
		w := temporal.DominantWeight[scale]
		sum += w * c.states[scale].currentCoherence
		weights += w
	}
	return sum / weights
}

// DominantMode is the weighted vote across scales. A transitioning scale
// splits its weight between its from-mode and its target by transition
// progress. Ties go to stability.
func (c *Controller) DominantMode() temporal.Mode {
	votes := map[temporal.Mode]float64{}
	for _, scale := range temporal.Scales() {
		st := c.states[scale]
		w := temporal.DominantWeight[scale]
		if st.currentMode == temporal.ModeTransition {
			votes[st.fromMode] += w * (1 - st.transitionProgress)
			votes[st.targetMode] += w * st.transitionProgress
			continue
		}
		votes[st.currentMode] += w
	}
	if votes[temporal.ModeExploration] > votes[temporal.ModeStability] {
		return temporal.ModeExploration
	}
	return temporal.ModeStability
}

// History exposes the controller's cycle history ring.
func (c *Controller) History() *history.Ring {
	return c.history
}

func (c *Controller) scaleSnapshots() map[temporal.Scale]history.ScaleSnapshot {
	out := make(map[temporal.Scale]history.ScaleSnapshot, len(c.states))
	for scale, st := range c.states {
		out[scale] = history.ScaleSnapshot{
			Mode:               st.currentMode,
			TargetMode:         st.targetMode,
			Coherence:          st.currentCoherence,
			TransitionProgress: st.transitionProgress,
		}
	}
	return out
}

// #endregion views
