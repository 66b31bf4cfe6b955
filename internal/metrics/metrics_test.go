package metrics

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func newTestMetrics(seed int64) *Metrics {
	return NewMetrics(DefaultConfig(), rand.New(rand.NewSource(seed)), nil)
}

func TestQCTFScenario(t *testing.T) {
	// Midnight UTC gives θ=0, cos(θ)=1.
	at := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	got := QCTF(0.75, 2, 580, at)
	want := 0.75 + (math.Log(3)/math.Log(5))*(math.Log(581)/math.Log(1000))*0.1
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("QCTF = %.6f, want %.6f", got, want)
	}
	if math.Abs(want-0.8129) > 0.001 {
		t.Fatalf("expected value ≈ 0.8129, formula gives %.6f", want)
	}
}

func TestQCTFNoonNegatesBoost(t *testing.T) {
	// Noon UTC gives θ=π, cos(θ)=−1: the boost flips sign.
	midnight := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	noon := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	up := QCTF(0.5, 4, 100, midnight) - 0.5
	down := QCTF(0.5, 4, 100, noon) - 0.5
	if math.Abs(up+down) > 1e-9 {
		t.Fatalf("boost at noon (%.6f) should mirror midnight (%.6f)", down, up)
	}
}

func TestSetPropagatesToMicro(t *testing.T) {
	m := newTestMetrics(1)
	m.Set(TypeCoherence, BandInstant, 1.0)
	micro := m.Value(TypeCoherence, BandMicro)
	if math.Abs(micro-0.30) > 1e-9 {
		t.Fatalf("micro after one instant sample = %.4f, want 0.30", micro)
	}
	if m.Value(TypeCoherence, BandInstant) != 1.0 {
		t.Fatal("instant band should hold the raw value")
	}
}

func TestSetDeterministicUnderSeed(t *testing.T) {
	a := newTestMetrics(42)
	b := newTestMetrics(42)
	for i := 0; i < 500; i++ {
		v := float64(i%10) / 10
		a.Set(TypeCoherence, BandInstant, v)
		b.Set(TypeCoherence, BandInstant, v)
	}
	for _, band := range Bands() {
		if a.Value(TypeCoherence, band) != b.Value(TypeCoherence, band) {
			t.Fatalf("band %s diverged under identical seeds", band)
		}
	}
}

func TestSlowBandsEventuallyMove(t *testing.T) {
	m := newTestMetrics(7)
	for i := 0; i < 2000; i++ {
		m.Set(TypeCoherence, BandInstant, 0.9)
	}
	if m.Value(TypeCoherence, BandMeso) == 0 {
		t.Fatal("meso band never received propagation over 2000 samples")
	}
	if m.Value(TypeCoherence, BandMacro) == 0 {
		t.Fatal("macro band never received propagation over 2000 samples")
	}
}

func TestSampleCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleCap = 16
	m := NewMetrics(cfg, rand.New(rand.NewSource(1)), nil)
	for i := 0; i < 100; i++ {
		m.Set(TypeEntropy, BandMicro, float64(i))
	}
	got := m.Samples(TypeEntropy, BandMicro)
	if len(got) != 16 {
		t.Fatalf("retained %d samples, want 16", len(got))
	}
	// FIFO: the oldest retained sample is the 85th write.
	if got[0].Value != 84 {
		t.Fatalf("oldest retained sample = %.0f, want 84", got[0].Value)
	}
}
