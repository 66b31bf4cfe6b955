package engine

import (
	"context"
	"math"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/wiltonos/lemniscate/internal/measure"
	"github.com/wiltonos/lemniscate/internal/temporal"
)

func newTestEngine() *Engine {
	cfg := DefaultConfig()
	cfg.SnapshotEvery = 0
	return New(cfg, zap.NewNop())
}

func TestStartStopLeavesNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := DefaultConfig()
	cfg.CycleInterval = time.Millisecond
	cfg.SnapshotEvery = 0
	e := New(cfg, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := e.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := e.Start(ctx); err == nil {
		t.Fatal("double start must error")
	}
	time.Sleep(20 * time.Millisecond)
	e.Stop()
	e.Stop() // idempotent

	if e.Snapshot().Cycle == 0 {
		t.Fatal("loop never processed a cycle")
	}
}

func TestProcessCycleAdvancesSnapshot(t *testing.T) {
	e := newTestEngine()
	for i := 0; i < 50; i++ {
		e.ProcessCycle()
	}
	snap := e.Snapshot()
	if snap.Cycle != 50 {
		t.Fatalf("cycle = %d, want 50", snap.Cycle)
	}
	if snap.HistoryLen != 50 {
		t.Fatalf("history len = %d, want 50", snap.HistoryLen)
	}
	if snap.Coherence < 0 || snap.Coherence > 1 {
		t.Fatalf("coherence %.4f out of [0,1]", snap.Coherence)
	}
	if len(snap.Scales) != 3 {
		t.Fatalf("snapshot has %d scales, want 3", len(snap.Scales))
	}
}

func TestObservationsFlowThroughEngine(t *testing.T) {
	e := newTestEngine()
	if m, err := e.ObservePhase("a", temporal.ScaleMicro, 0.7); err != nil || m != nil {
		t.Fatalf("first phase should be silent no-op, got (%+v, %v)", m, err)
	}
	m, err := e.ObservePhase("b", temporal.ScaleMicro, 0.7)
	if err != nil {
		t.Fatalf("observe: %v", err)
	}
	if m == nil || math.Abs(m.Value-1.0) > 1e-9 {
		t.Fatalf("identical phases should measure 1.0, got %+v", m)
	}

	snap := e.Snapshot()
	if snap.Scales[temporal.ScaleMicro].LatestMeasurement == nil {
		t.Fatal("snapshot should expose the latest measurement")
	}
}

func TestObserveVectorValidation(t *testing.T) {
	e := newTestEngine()
	if _, err := e.ObserveVector("a", temporal.ScaleMicro, nil); err == nil {
		t.Fatal("empty vector must error")
	}
}

func TestGoalValidation(t *testing.T) {
	e := newTestEngine()
	if err := e.SetGoal(1.5, 0); err == nil {
		t.Fatal("out-of-range emphasis must error")
	}
	if err := e.SetGoal(0.9, 0.1); err != nil {
		t.Fatalf("valid goal errored: %v", err)
	}
	snap := e.Snapshot()
	if snap.Scales[temporal.ScaleMicro].Mode != temporal.ModeTransition {
		t.Fatal("strong innovation goal should start a micro transition")
	}
}

func TestCollapseAfterObservations(t *testing.T) {
	e := newTestEngine()
	e.ObservePhase("a", temporal.ScaleMeso, 0.2)
	e.ObservePhase("b", temporal.ScaleMeso, 0.2)
	ev := e.Collapse("test-trigger")
	if _, ok := ev.Values[temporal.ScaleMeso]; !ok {
		t.Fatalf("meso had a measurement component and should collapse, got %+v", ev.Values)
	}
}

func TestRequestTransitionReachesController(t *testing.T) {
	e := newTestEngine()
	if err := e.RequestTransition(temporal.ScaleMacro, temporal.ModeExploration); err != nil {
		t.Fatalf("request: %v", err)
	}
	st := e.Snapshot().Scales[temporal.ScaleMacro]
	if st.Mode != temporal.ModeTransition || st.TargetMode != temporal.ModeExploration {
		t.Fatalf("macro = %s→%s, want transition→exploration", st.Mode, st.TargetMode)
	}
	for i := 0; i < temporal.TransitionCycles[temporal.ScaleMacro]; i++ {
		e.ProcessCycle()
	}
	st = e.Snapshot().Scales[temporal.ScaleMacro]
	if st.Mode != temporal.ModeExploration || st.TransitionProgress != 1 {
		t.Fatalf("after full duration: %+v", st)
	}
}

func TestPropagateThroughEngine(t *testing.T) {
	e := newTestEngine()
	moved := e.Propagate(temporal.ScaleMicro)
	if len(moved) != 2 {
		t.Fatalf("micro should touch meso and macro, got %v", moved)
	}
}

func TestHealthOnLiveSnapshot(t *testing.T) {
	e := newTestEngine()
	for i := 0; i < 200; i++ {
		e.ProcessCycle()
	}
	report := CheckSnapshot(e.Snapshot(), e.cfg.Controller.HistoryCap)
	if !report.Passed {
		t.Fatalf("live snapshot failed health: %v", report.Reasons)
	}
}

func TestHealthRejectsBadSnapshot(t *testing.T) {
	snap := Snapshot{
		Coherence: 1.2,
		Scales: map[temporal.Scale]ScaleStatus{
			temporal.ScaleMicro: {Coherence: -0.1, TransitionProgress: 0.5},
		},
		HistoryLen: 2000,
	}
	report := CheckSnapshot(snap, 1000)
	if report.Passed {
		t.Fatal("invalid snapshot must fail health")
	}
	if len(report.Reasons) != 3 {
		t.Fatalf("expected 3 failures, got %v", report.Reasons)
	}
}

func TestMeasurementConfidenceFeedsSuperposition(t *testing.T) {
	e := newTestEngine()
	var last *measure.Measurement
	for i := 0; i < 6; i++ {
		m, err := e.ObservePhase(measure.SourceID(string(rune('a'+i))), temporal.ScaleMicro, 1.0)
		if err != nil {
			t.Fatalf("observe: %v", err)
		}
		if m != nil {
			last = m
		}
	}
	if last == nil {
		t.Fatal("expected measurements")
	}
	ev := e.Collapse("after-burst")
	got, ok := ev.Values[temporal.ScaleMicro]
	if !ok {
		t.Fatal("micro should be superposed")
	}
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("collapsed value = %.6f, want 1.0 for aligned phases", got)
	}
}
