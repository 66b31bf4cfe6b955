// Package engine composes the wave protocol, metrics, measurement engine,
// mode controller, and orchestrator into a single runtime with one
// processing cycle. A background loop ticks the cycle; all entry points
// serialize on one mutex.
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wiltonos/lemniscate/internal/controller"
	"github.com/wiltonos/lemniscate/internal/journal"
	"github.com/wiltonos/lemniscate/internal/measure"
	"github.com/wiltonos/lemniscate/internal/metrics"
	"github.com/wiltonos/lemniscate/internal/orchestrator"
	"github.com/wiltonos/lemniscate/internal/temporal"
	"github.com/wiltonos/lemniscate/internal/wave"
)

// #region engine

// Engine is the lemniscate runtime. All mutable state is guarded by mu; the
// background loop and external callers serialize on it.
type Engine struct {
	mu    sync.Mutex
	log   *zap.Logger
	cfg   Config
	clock func() time.Time

	wave       *wave.Wave
	metrics    *metrics.Metrics
	measure    *measure.Engine
	controller *controller.Controller
	orch       *orchestrator.Orchestrator
	journal    *journal.Store

	cycle    int
	insights int // cumulative recorded measurements
	qctf     float64

	loopDone chan struct{}
	loopWG   sync.WaitGroup
	running  bool
}

// Option tweaks engine construction.
type Option func(*Engine)

// WithJournal attaches a journal store for snapshot/measurement persistence.
func WithJournal(j *journal.Store) Option {
	return func(e *Engine) { e.journal = j }
}

// WithClock injects a time source, for deterministic replay.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// New creates an engine. logger must not be nil (use zap.NewNop() in tests).
func New(cfg Config, logger *zap.Logger, opts ...Option) *Engine {
	if cfg.CycleInterval <= 0 {
		cfg.CycleInterval = DefaultConfig().CycleInterval
	}
	e := &Engine{
		log:   logger,
		cfg:   cfg,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	e.wave = wave.NewWave(cfg.Wave)
	e.metrics = metrics.NewMetrics(cfg.Metrics, rng, e.clock)
	e.measure = measure.NewEngine(cfg.Measure, e.clock)
	e.controller = controller.NewController(cfg.Controller, rng, e.clock)
	e.orch = orchestrator.NewOrchestrator(cfg.Orchestrator, e.clock)
	return e
}

// #endregion engine

// #region lifecycle

// Start launches the background cycle loop. Returns an error when already
// running.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return errors.New("engine already started")
	}
	e.running = true
	e.loopDone = make(chan struct{})
	e.loopWG.Add(1)

	go func() {
		defer e.loopWG.Done()
		ticker := time.NewTicker(e.cfg.CycleInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-e.loopDone:
				return
			case <-ticker.C:
				e.ProcessCycle()
			}
		}
	}()

	e.log.Info("engine started", zap.Duration("cycle_interval", e.cfg.CycleInterval))
	return nil
}

// Stop halts the background loop and waits for it to exit. Safe to call
// when never started.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	close(e.loopDone)
	e.mu.Unlock()

	e.loopWG.Wait()
	e.log.Info("engine stopped", zap.Int("cycles", e.Snapshot().Cycle))
}

// #endregion lifecycle

// #region cycle

// ProcessCycle runs one full processing cycle: advance the controller,
// perturb composite coherence through the wave, update metrics and the
// orchestrator, and periodically persist a snapshot.
func (e *Engine) ProcessCycle() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.processCycleLocked()
}

func (e *Engine) processCycleLocked() {
	e.cycle++
	e.controller.Tick()

	dominant := e.controller.DominantMode()
	e.wave.SetMode(dominant)

	base := e.controller.CompositeCoherence()
	perturbed := e.wave.Apply(base)
	e.metrics.Set(metrics.TypeCoherence, metrics.BandInstant, perturbed)

	for _, scale := range temporal.Scales() {
		e.orch.SetValue(scale, e.controller.Coherence(scale))
	}

	// Variant count follows how many scales are mid-transition.
	variants := 1
	for _, scale := range temporal.Scales() {
		if e.controller.State(scale).CurrentMode == temporal.ModeTransition {
			variants++
		}
	}
	e.qctf = metrics.QCTF(perturbed, variants, e.insights, e.clock())
	e.metrics.Set(metrics.TypeQCTF, metrics.BandInstant, e.qctf)

	if e.journal != nil && e.cfg.SnapshotEvery > 0 && e.cycle%e.cfg.SnapshotEvery == 0 {
		if err := e.persistSnapshotLocked(); err != nil {
			e.log.Warn("snapshot persist failed", zap.Error(err))
		}
	}
}

func (e *Engine) persistSnapshotLocked() error {
	snap := e.snapshotLocked()
	detail, err := json.Marshal(snap.Scales)
	if err != nil {
		return fmt.Errorf("marshal detail: %w", err)
	}
	vec := make(map[temporal.Scale]float64, len(snap.Scales))
	for scale, st := range snap.Scales {
		vec[scale] = st.Coherence
	}
	_, err = e.journal.SaveSnapshot(journal.SnapshotRecord{
		CreatedAt:      snap.At,
		DominantMode:   snap.DominantMode,
		Coherence:      snap.Coherence,
		QCTF:           snap.QCTF,
		ScaleCoherence: vec,
		DetailJSON:     string(detail),
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// #endregion cycle

// #region observations

// ObserveVector feeds a state vector into the measurement engine.
func (e *Engine) ObserveVector(source measure.SourceID, scale temporal.Scale, vector []float64) (*measure.Measurement, error) {
	if len(vector) == 0 {
		return nil, errors.New("vector must not be empty")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.afterObservationLocked(scale, e.measure.RecordVector(source, scale, vector))
}

// ObservePhase feeds a phase angle (radians) into the measurement engine.
func (e *Engine) ObservePhase(source measure.SourceID, scale temporal.Scale, phase float64) (*measure.Measurement, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.afterObservationLocked(scale, e.measure.RecordPhase(source, scale, phase))
}

// ObserveOutput feeds a text output into the measurement engine.
func (e *Engine) ObserveOutput(source measure.SourceID, scale temporal.Scale, output string) (*measure.Measurement, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.afterObservationLocked(scale, e.measure.RecordOutput(source, scale, output))
}

// afterObservationLocked books a successful measurement: counts it, persists
// it, superposes it onto the scale, and records attractor approaches.
func (e *Engine) afterObservationLocked(scale temporal.Scale, m *measure.Measurement) (*measure.Measurement, error) {
	if m == nil {
		return nil, nil
	}
	e.insights++
	e.orch.AddComponent(scale, m.Value, m.Confidence)

	if e.journal != nil {
		err := e.journal.SaveMeasurement(journal.MeasurementRecord{
			Scale:      m.Scale,
			Method:     m.Method,
			Value:      m.Value,
			Confidence: m.Confidence,
			SampleSize: m.SampleSize,
			CreatedAt:  m.At,
		})
		if err != nil {
			return m, fmt.Errorf("persist measurement: %w", err)
		}
	}

	if r := e.measure.Attractor(scale); r != nil && r.Approaching {
		e.log.Debug("attractor approach",
			zap.String("scale", string(scale)),
			zap.Float64("attractor", r.Attractor),
			zap.Float64("distance", r.Distance))
		if e.journal != nil {
			err := e.journal.SaveAttractorEvent(journal.AttractorEvent{
				Scale:       r.Scale,
				Attractor:   r.Attractor,
				Trend:       r.Trend,
				Distance:    r.Distance,
				Approaching: true,
				CreatedAt:   m.At,
			})
			if err != nil {
				return m, fmt.Errorf("persist attractor event: %w", err)
			}
		}
	}
	return m, nil
}

// #endregion observations

// #region control

// RequestTransition asks the controller to move a scale to a definite mode.
func (e *Engine) RequestTransition(scale temporal.Scale, target temporal.Mode) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.controller.RequestTransition(scale, target); err != nil {
		return err
	}
	e.log.Info("transition requested", zap.String("scale", string(scale)), zap.String("target", string(target)))
	return nil
}

// SetGoal applies innovation/stability emphasis knobs (each 0–1).
func (e *Engine) SetGoal(innovation, stability float64) error {
	if innovation < 0 || innovation > 1 || stability < 0 || stability > 1 {
		return fmt.Errorf("goal emphasis out of [0,1]: innovation=%.2f stability=%.2f", innovation, stability)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.controller.SetGoal(innovation, stability)
	e.log.Info("goal set", zap.Float64("innovation", innovation), zap.Float64("stability", stability))
	return nil
}

// Collapse forces all superposed scales to definite values.
func (e *Engine) Collapse(trigger string) orchestrator.CollapseEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	ev := e.orch.Collapse(trigger)
	e.log.Info("superposition collapsed", zap.String("trigger", trigger), zap.Int("scales", len(ev.Values)))
	return ev
}

// Synchronize pulls all scales toward the dominant scale's value.
func (e *Engine) Synchronize(dominant temporal.Scale) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.orch.Synchronize(dominant)
}

// Propagate pushes one scale's value to its paired targets.
func (e *Engine) Propagate(from temporal.Scale) map[temporal.Scale]float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.orch.Propagate(from)
}

// #endregion control

// #region snapshot

// Snapshot returns a consistent view of the engine.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	scales := make(map[temporal.Scale]ScaleStatus, 3)
	for _, scale := range temporal.Scales() {
		st := e.controller.State(scale)
		scales[scale] = ScaleStatus{
			Mode:               st.CurrentMode,
			TargetMode:         st.TargetMode,
			Coherence:          st.CurrentCoherence,
			TransitionProgress: st.TransitionProgress,
			Attractor:          e.measure.Attractor(scale),
			LatestMeasurement:  e.measure.Latest(scale),
		}
	}
	return Snapshot{
		At:           e.clock(),
		Cycle:        e.cycle,
		DominantMode: e.controller.DominantMode(),
		Coherence:    e.metrics.Value(metrics.TypeCoherence, metrics.BandInstant),
		QCTF:         e.qctf,
		Scales:       scales,
		HistoryLen:   e.controller.History().Len(),
	}
}

// #endregion snapshot
