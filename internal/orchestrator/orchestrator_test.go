package orchestrator

import (
	"math"
	"testing"

	"github.com/wiltonos/lemniscate/internal/temporal"
)

func TestDirectPath(t *testing.T) {
	o := NewOrchestrator(DefaultConfig(), nil)
	plan, err := o.PlanTransition(temporal.ScaleMicro, 0.3, PathDirect)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(plan.Waypoints) != 1 || plan.Waypoints[0] != 0.3 {
		t.Fatalf("direct waypoints = %v, want [0.3]", plan.Waypoints)
	}
	v, done := o.Step(temporal.ScaleMicro)
	if !done || v != 0.3 {
		t.Fatalf("step = (%.4f, %v), want (0.3, true)", v, done)
	}
}

func TestDiagonalPathEndsExactly(t *testing.T) {
	o := NewOrchestrator(DefaultConfig(), nil)
	plan, err := o.PlanTransition(temporal.ScaleMeso, 0.25, PathDiagonal)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(plan.Waypoints) != DefaultConfig().DiagonalSteps {
		t.Fatalf("waypoint count = %d, want %d", len(plan.Waypoints), DefaultConfig().DiagonalSteps)
	}
	// Waypoints descend monotonically toward the target.
	prev := plan.From
	for i, w := range plan.Waypoints {
		if w >= prev {
			t.Fatalf("waypoint %d (%.4f) not below previous (%.4f)", i, w, prev)
		}
		prev = w
	}
	var v float64
	done := false
	for !done {
		v, done = o.Step(temporal.ScaleMeso)
	}
	if v != 0.25 {
		t.Fatalf("final value = %.6f, want 0.25", v)
	}
}

func TestOscillatingPathEndsExactly(t *testing.T) {
	o := NewOrchestrator(DefaultConfig(), nil)
	plan, err := o.PlanTransition(temporal.ScaleMacro, 0.4, PathOscillating)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	last := plan.Waypoints[len(plan.Waypoints)-1]
	if last != 0.4 {
		t.Fatalf("oscillating path must end exactly at target, got %.6f", last)
	}
	for i, w := range plan.Waypoints {
		if w < 0 || w > 1 {
			t.Fatalf("waypoint %d (%.4f) out of [0,1]", i, w)
		}
	}
}

func TestPlanValidation(t *testing.T) {
	o := NewOrchestrator(DefaultConfig(), nil)
	if _, err := o.PlanTransition(temporal.ScaleMicro, 1.5, PathDirect); err == nil {
		t.Fatal("out-of-range target must error")
	}
	if _, err := o.PlanTransition("cosmic", 0.5, PathDirect); err == nil {
		t.Fatal("unknown scale must error")
	}
	if _, err := o.PlanTransition(temporal.ScaleMicro, 0.5, "spiral"); err == nil {
		t.Fatal("unknown path kind must error")
	}
}

func TestSuperpositionAndCollapse(t *testing.T) {
	o := NewOrchestrator(DefaultConfig(), nil)
	o.AddComponent(temporal.ScaleMicro, 0.8, 3)
	o.AddComponent(temporal.ScaleMicro, 0.2, 1)
	o.AddComponent(temporal.ScaleMicro, 0.5, 0) // ignored

	v, super := o.Superposed(temporal.ScaleMicro)
	if !super {
		t.Fatal("micro should be superposed")
	}
	want := (0.8*3 + 0.2*1) / 4
	if math.Abs(v-want) > 1e-9 {
		t.Fatalf("superposed = %.6f, want %.6f", v, want)
	}

	ev := o.Collapse("external-trigger")
	if ev.Trigger != "external-trigger" {
		t.Fatalf("trigger = %q", ev.Trigger)
	}
	if got := ev.Values[temporal.ScaleMicro]; math.Abs(got-want) > 1e-9 {
		t.Fatalf("collapsed value = %.6f, want %.6f", got, want)
	}
	if _, ok := ev.Values[temporal.ScaleMeso]; ok {
		t.Fatal("meso had no components and must not appear in the event")
	}
	if _, super := o.Superposed(temporal.ScaleMicro); super {
		t.Fatal("collapse must clear components")
	}
	if o.Value(temporal.ScaleMicro) != v {
		t.Fatal("collapse must pin the definite value")
	}
}

func TestSynchronize(t *testing.T) {
	o := NewOrchestrator(DefaultConfig(), nil)
	o.SetValue(temporal.ScaleMicro, 0.2)
	o.SetValue(temporal.ScaleMeso, 0.6)
	o.SetValue(temporal.ScaleMacro, 0.9)

	o.Synchronize(temporal.ScaleMicro)

	if o.Value(temporal.ScaleMicro) != 0.2 {
		t.Fatal("dominant scale must not move")
	}
	wantMeso := 0.6 + temporal.SyncInfluence[temporal.ScaleMeso]*(0.2-0.6)
	if math.Abs(o.Value(temporal.ScaleMeso)-wantMeso) > 1e-9 {
		t.Fatalf("meso = %.6f, want %.6f", o.Value(temporal.ScaleMeso), wantMeso)
	}
	wantMacro := 0.9 + temporal.SyncInfluence[temporal.ScaleMacro]*(0.2-0.9)
	if math.Abs(o.Value(temporal.ScaleMacro)-wantMacro) > 1e-9 {
		t.Fatalf("macro = %.6f, want %.6f", o.Value(temporal.ScaleMacro), wantMacro)
	}
}

func TestPropagate(t *testing.T) {
	o := NewOrchestrator(DefaultConfig(), nil)
	o.SetValue(temporal.ScaleMicro, 1.0)
	o.SetValue(temporal.ScaleMeso, 0.5)
	o.SetValue(temporal.ScaleMacro, 0.5)

	moved := o.Propagate(temporal.ScaleMicro)
	if len(moved) != 2 {
		t.Fatalf("micro should move meso and macro, got %v", moved)
	}
	wantMeso := 0.5 + 0.30*(1.0-0.5)
	if math.Abs(moved[temporal.ScaleMeso]-wantMeso) > 1e-9 {
		t.Fatalf("meso = %.6f, want %.6f", moved[temporal.ScaleMeso], wantMeso)
	}
	wantMacro := 0.5 + 0.10*(1.0-0.5)
	if math.Abs(moved[temporal.ScaleMacro]-wantMacro) > 1e-9 {
		t.Fatalf("macro = %.6f, want %.6f", moved[temporal.ScaleMacro], wantMacro)
	}
	if o.Value(temporal.ScaleMicro) != 1.0 {
		t.Fatal("source scale must not move")
	}
}
