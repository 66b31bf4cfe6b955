package replay

import (
	"encoding/json"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sebdah/goldie/v2"
)

func alignedPhaseFixture() *Fixture {
	v := 1.0
	return &Fixture{
		Description: "two aligned phases measure full coherence",
		Seed:        7,
		Steps: []FixtureStep{
			{Cycles: 5},
			{
				Observations: []FixtureObservation{
					{Source: "alpha", Scale: "micro", Kind: "phase", Phase: 0.7},
					{Source: "beta", Scale: "micro", Kind: "phase", Phase: 0.7},
				},
				Expect: &FixtureExpect{Measurement: &v, DominantMode: "stability"},
			},
		},
	}
}

func TestRunMatchesExpectations(t *testing.T) {
	summary, results, err := Run(alignedPhaseFixture())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Steps != 2 || summary.Matches != 2 || summary.Divergences != 0 {
		t.Fatalf("summary = %+v, want 2 steps all matching", summary)
	}
	last := results[1]
	if last.Measured == nil || *last.Measured != 1.0 {
		t.Fatalf("measured = %v, want 1.0", last.Measured)
	}
	if last.DominantMode != "stability" {
		t.Fatalf("dominant = %q, want stability", last.DominantMode)
	}
}

func TestRunDetectsDivergence(t *testing.T) {
	f := alignedPhaseFixture()
	wrong := 0.5
	f.Steps[1].Expect.Measurement = &wrong
	summary, results, err := Run(f)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Divergences != 1 {
		t.Fatalf("summary = %+v, want 1 divergence", summary)
	}
	if results[1].Match || len(results[1].Diffs) == 0 {
		t.Fatalf("step 1 should carry diffs, got %+v", results[1])
	}
}

func TestRunDeterministic(t *testing.T) {
	f := &Fixture{
		Description: "seeded runs are identical",
		Seed:        42,
		Steps: []FixtureStep{
			{Cycles: 50},
			{
				Cycles: 10,
				Observations: []FixtureObservation{
					{Source: "a", Scale: "meso", Kind: "vector", Vector: []float64{1, 0, 1}},
					{Source: "b", Scale: "meso", Kind: "vector", Vector: []float64{1, 0.2, 0.9}},
				},
			},
			{Cycles: 100},
		},
	}
	s1, r1, err := Run(f)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	s2, r2, err := Run(f)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if s1 != s2 {
		t.Fatalf("summaries diverged: %+v vs %+v", s1, s2)
	}
	if !reflect.DeepEqual(r1, r2) {
		t.Fatalf("results diverged:\n%+v\n%+v", r1, r2)
	}
}

func TestRunRejectsBadObservation(t *testing.T) {
	f := &Fixture{
		Seed: 1,
		Steps: []FixtureStep{
			{Observations: []FixtureObservation{{Source: "a", Scale: "micro", Kind: "telepathy"}}},
		},
	}
	if _, _, err := Run(f); err == nil {
		t.Fatal("unknown kind must error")
	}

	f.Steps[0].Observations[0] = FixtureObservation{Source: "a", Scale: "cosmic", Kind: "phase"}
	if _, _, err := Run(f); err == nil {
		t.Fatal("unknown scale must error")
	}
}

func TestFixtureRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.json")
	f := alignedPhaseFixture()
	if err := WriteFixture(path, f); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(f, got) {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", got, f)
	}
}

func TestLoadFixtureMissing(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("missing fixture must error")
	}
}

func TestFixtureGolden(t *testing.T) {
	data, err := json.MarshalIndent(alignedPhaseFixture(), "", "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	g := goldie.New(t)
	g.Assert(t, "fixture", data)
}
