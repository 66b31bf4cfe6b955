// Package measure ingests observations from named sources and derives
// per-scale coherence measurements: vector similarity, Kuramoto phase
// synchrony, or text output agreement, depending on what arrived last.
package measure

import (
	"time"

	"github.com/wiltonos/lemniscate/internal/temporal"
)

// #region ring

type ringKey struct {
	source SourceID
	scale  temporal.Scale
}

// obsRing is a bounded FIFO of observations for one (source, scale).
type obsRing struct {
	buf []observation
	cap int
}

func (r *obsRing) push(o observation) {
	r.buf = append(r.buf, o)
	if len(r.buf) > r.cap {
		r.buf = r.buf[len(r.buf)-r.cap:]
	}
}

// #endregion ring

// #region engine

// Engine is the coherence measurement engine. It is not safe for concurrent
// use; the runtime engine serializes access.
type Engine struct {
	config   Config
	clock    func() time.Time
	rings    map[ringKey]*obsRing
	lastKind map[temporal.Scale]Kind
	history  map[temporal.Scale][]Measurement
}

// NewEngine creates a measurement engine. clock may be nil (time.Now).
func NewEngine(config Config, clock func() time.Time) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		config:   config,
		clock:    clock,
		rings:    make(map[ringKey]*obsRing),
		lastKind: make(map[temporal.Scale]Kind),
		history:  make(map[temporal.Scale][]Measurement),
	}
}

func (e *Engine) ring(source SourceID, scale temporal.Scale) *obsRing {
	key := ringKey{source, scale}
	r, ok := e.rings[key]
	if !ok {
		r = &obsRing{cap: e.config.RingCap}
		e.rings[key] = r
	}
	return r
}

// #endregion engine

// #region record

// RecordVector ingests a state vector and re-measures the scale.
// Returns nil when fewer than 2 in-window observations exist.
func (e *Engine) RecordVector(source SourceID, scale temporal.Scale, vector []float64) *Measurement {
	v := make([]float64, len(vector))
	copy(v, vector)
	e.ring(source, scale).push(observation{Kind: KindVector, At: e.clock(), Vector: v})
	e.lastKind[scale] = KindVector
	return e.measure(scale)
}

// RecordPhase ingests a phase angle (radians) and re-measures the scale.
func (e *Engine) RecordPhase(source SourceID, scale temporal.Scale, phase float64) *Measurement {
	e.ring(source, scale).push(observation{Kind: KindPhase, At: e.clock(), Phase: phase})
	e.lastKind[scale] = KindPhase
	return e.measure(scale)
}

// RecordOutput ingests a text output and re-measures the scale.
func (e *Engine) RecordOutput(source SourceID, scale temporal.Scale, output string) *Measurement {
	e.ring(source, scale).push(observation{Kind: KindOutput, At: e.clock(), Output: output})
	e.lastKind[scale] = KindOutput
	return e.measure(scale)
}

// #endregion record

// #region measure

// measure computes a coherence measurement for a scale using the method
// matching the last-recorded observation kind. Fewer than 2 in-window
// observations is a silent no-op returning nil.
func (e *Engine) measure(scale temporal.Scale) *Measurement {
	kind, ok := e.lastKind[scale]
	if !ok {
		return nil
	}

	cutoff := e.clock().Add(-e.config.Window)
	var vectors [][]float64
	var phases []float64
	var outputs []string
	for key, r := range e.rings {
		if key.scale != scale {
			continue
		}
		for _, o := range r.buf {
			if o.Kind != kind || o.At.Before(cutoff) {
				continue
			}
			switch kind {
			case KindVector:
				vectors = append(vectors, o.Vector)
			case KindPhase:
				phases = append(phases, o.Phase)
			case KindOutput:
				outputs = append(outputs, o.Output)
			}
		}
	}

	var value float64
	var method Method
	var n int
	switch kind {
	case KindVector:
		n = len(vectors)
		value = meanPairwiseCosine(vectors)
		method = MethodVectorSimilarity
	case KindPhase:
		n = len(phases)
		value = kuramotoOrder(phases)
		method = MethodPhaseSync
	case KindOutput:
		n = len(outputs)
		value = meanPairwiseJaccard(outputs)
		method = MethodOutputAgreement
	}
	if n < 2 {
		return nil
	}

	m := Measurement{
		Value:      clamp01(value),
		Method:     method,
		Scale:      scale,
		At:         e.clock(),
		SampleSize: n,
		Confidence: confidence(n),
	}
	buf := append(e.history[scale], m)
	if len(buf) > e.config.HistoryCap {
		buf = buf[len(buf)-e.config.HistoryCap:]
	}
	e.history[scale] = buf
	return &m
}

// History returns a copy of the retained measurements for a scale,
// oldest first.
func (e *Engine) History(scale temporal.Scale) []Measurement {
	src := e.history[scale]
	out := make([]Measurement, len(src))
	copy(out, src)
	return out
}

// Latest returns the most recent measurement for a scale, or nil.
func (e *Engine) Latest(scale temporal.Scale) *Measurement {
	h := e.history[scale]
	if len(h) == 0 {
		return nil
	}
	m := h[len(h)-1]
	return &m
}

// ObservationCount reports retained observations for a (source, scale).
func (e *Engine) ObservationCount(source SourceID, scale temporal.Scale) int {
	r, ok := e.rings[ringKey{source, scale}]
	if !ok {
		return 0
	}
	return len(r.buf)
}

// #endregion measure

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
