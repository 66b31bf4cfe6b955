// Package orchestrator composes per-scale coherence values: planned
// transition paths, weighted superposition with forced collapse, cross-scale
// synchronization, and pairwise propagation.
package orchestrator

import (
	"fmt"
	"math"
	"time"

	"github.com/wiltonos/lemniscate/internal/temporal"
)

// #region propagation-matrix

// propagationStrength is the hard-coded pairwise influence each scale
// exerts on the others.
var propagationStrength = map[temporal.Scale]map[temporal.Scale]float64{
	temporal.ScaleMicro: {temporal.ScaleMeso: 0.30, temporal.ScaleMacro: 0.10},
	temporal.ScaleMeso:  {temporal.ScaleMicro: 0.50, temporal.ScaleMacro: 0.25},
	temporal.ScaleMacro: {temporal.ScaleMicro: 0.20, temporal.ScaleMeso: 0.40},
}

// #endregion propagation-matrix

// #region orchestrator

// Orchestrator holds one coherence value per scale plus any in-flight plans
// and superposition components. Not safe for concurrent use; the engine
// serializes access.
type Orchestrator struct {
	config     Config
	clock      func() time.Time
	values     map[temporal.Scale]float64
	plans      map[temporal.Scale]*activePlan
	components map[temporal.Scale][]component
}

// NewOrchestrator creates an orchestrator with every scale at the stability
// attractor. clock may be nil (time.Now).
func NewOrchestrator(config Config, clock func() time.Time) *Orchestrator {
	if clock == nil {
		clock = time.Now
	}
	o := &Orchestrator{
		config:     config,
		clock:      clock,
		values:     make(map[temporal.Scale]float64),
		plans:      make(map[temporal.Scale]*activePlan),
		components: make(map[temporal.Scale][]component),
	}
	for _, scale := range temporal.Scales() {
		o.values[scale] = temporal.StabilityCoherence
	}
	return o
}

// Value returns the current coherence value for a scale.
func (o *Orchestrator) Value(scale temporal.Scale) float64 {
	return o.values[scale]
}

// SetValue overwrites a scale's value directly, clamped to [0,1].
func (o *Orchestrator) SetValue(scale temporal.Scale, v float64) {
	o.values[scale] = clamp01(v)
}

// Values returns a copy of all per-scale values.
func (o *Orchestrator) Values() map[temporal.Scale]float64 {
	out := make(map[temporal.Scale]float64, len(o.values))
	for k, v := range o.values {
		out[k] = v
	}
	return out
}

// #endregion orchestrator

// #region paths

// PlanTransition generates a waypoint path from the scale's current value to
// target and arms it. Stepping the plan moves the scale along the waypoints.
func (o *Orchestrator) PlanTransition(scale temporal.Scale, target float64, kind PathKind) (TransitionPlan, error) {
	if target < 0 || target > 1 {
		return TransitionPlan{}, fmt.Errorf("target %.4f out of [0,1]", target)
	}
	from, ok := o.values[scale]
	if !ok {
		return TransitionPlan{}, fmt.Errorf("unknown scale %q", scale)
	}

	var waypoints []float64
	switch kind {
	case PathDirect:
		waypoints = []float64{target}
	case PathDiagonal:
		waypoints = linearPath(from, target, o.config.DiagonalSteps)
	case PathOscillating:
		waypoints = linearPath(from, target, o.config.OscillateSteps)
		// Perturb interior waypoints; endpoints stay exact.
		for i := 0; i < len(waypoints)-1; i++ {
			t := float64(i+1) / float64(len(waypoints))
			waypoints[i] = clamp01(waypoints[i] +
				o.config.OscillateAmp*math.Sin(2*math.Pi*o.config.OscillateTurns*t))
		}
	default:
		return TransitionPlan{}, fmt.Errorf("unknown path kind %q", kind)
	}

	plan := TransitionPlan{Scale: scale, Kind: kind, From: from, To: target, Waypoints: waypoints}
	o.plans[scale] = &activePlan{plan: plan}
	return plan, nil
}

// Step advances a scale's armed plan by one waypoint. Returns the new value
// and whether the plan completed. Without an armed plan it reports the
// current value and true.
func (o *Orchestrator) Step(scale temporal.Scale) (float64, bool) {
	ap, ok := o.plans[scale]
	if !ok {
		return o.values[scale], true
	}
	o.values[scale] = ap.plan.Waypoints[ap.next]
	ap.next++
	if ap.next >= len(ap.plan.Waypoints) {
		delete(o.plans, scale)
		return o.values[scale], true
	}
	return o.values[scale], false
}

// linearPath returns steps evenly spaced waypoints from from (exclusive) to
// to (inclusive).
func linearPath(from, to float64, steps int) []float64 {
	if steps < 1 {
		steps = 1
	}
	out := make([]float64, steps)
	for i := 1; i <= steps; i++ {
		out[i-1] = from + (to-from)*float64(i)/float64(steps)
	}
	return out
}

// #endregion paths

// #region superposition

// AddComponent contributes a weighted partial input to a scale's
// superposition. Non-positive weights are ignored.
func (o *Orchestrator) AddComponent(scale temporal.Scale, value, weight float64) {
	if weight <= 0 {
		return
	}
	o.components[scale] = append(o.components[scale], component{value: clamp01(value), weight: weight})
}

// Superposed returns the weighted average of a scale's components and true,
// or the definite value and false when no components exist.
func (o *Orchestrator) Superposed(scale temporal.Scale) (float64, bool) {
	comps := o.components[scale]
	if len(comps) == 0 {
		return o.values[scale], false
	}
	var sum, weights float64
	for _, c := range comps {
		sum += c.value * c.weight
		weights += c.weight
	}
	return sum / weights, true
}

// Collapse forces every superposed scale to its weighted average, clears all
// components, and reports what was resolved.
func (o *Orchestrator) Collapse(trigger string) CollapseEvent {
	ev := CollapseEvent{
		Trigger: trigger,
		At:      o.clock(),
		Values:  make(map[temporal.Scale]float64),
	}
	for _, scale := range temporal.Scales() {
		v, ok := o.Superposed(scale)
		if !ok {
			continue
		}
		o.values[scale] = v
		ev.Values[scale] = v
		delete(o.components, scale)
	}
	return ev
}

// #endregion superposition

// #region cross-scale

// Synchronize pulls every other scale toward the dominant scale's value
// using the fixed per-scale influence weights.
func (o *Orchestrator) Synchronize(dominant temporal.Scale) {
	anchor := o.values[dominant]
	for _, scale := range temporal.Scales() {
		if scale == dominant {
			continue
		}
		influence := temporal.SyncInfluence[scale]
		o.values[scale] = clamp01(o.values[scale] + influence*(anchor-o.values[scale]))
	}
}

// Propagate pushes the source scale's value toward each of its targets with
// the hard-coded pairwise strengths. Returns the scales that moved and their
// new values.
func (o *Orchestrator) Propagate(from temporal.Scale) map[temporal.Scale]float64 {
	moved := make(map[temporal.Scale]float64)
	source := o.values[from]
	for target, strength := range propagationStrength[from] {
		o.values[target] = clamp01(o.values[target] + strength*(source-o.values[target]))
		moved[target] = o.values[target]
	}
	return moved
}

// #endregion cross-scale

// #region helpers

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion helpers
