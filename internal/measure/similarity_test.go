package measure

import (
	"math"
	"testing"
)

func TestCosineIdenticalVectors(t *testing.T) {
	v := []float64{0.3, -0.2, 0.9, 0.1}
	got := meanPairwiseCosine([][]float64{v, v})
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("identical vectors: got %.9f, want 1.0", got)
	}
}

func TestCosineOrthogonalVectors(t *testing.T) {
	a := []float64{1, 0}
	b := []float64{0, 1}
	got := meanPairwiseCosine([][]float64{a, b})
	if math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("orthogonal vectors: got %.9f, want 0.5", got)
	}
}

func TestCosineMismatchedVectors(t *testing.T) {
	if got := cosineSimilarity([]float64{1, 2}, []float64{1}); got != 0 {
		t.Fatalf("mismatched lengths: got %.4f, want 0", got)
	}
	if got := cosineSimilarity([]float64{0, 0}, []float64{1, 1}); got != 0 {
		t.Fatalf("zero norm: got %.4f, want 0", got)
	}
}

func TestKuramotoIdenticalPhases(t *testing.T) {
	phases := []float64{1.234, 1.234, 1.234, 1.234, 1.234}
	got := kuramotoOrder(phases)
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("identical phases: got %.12f, want 1.0", got)
	}
}

func TestKuramotoEvenlySpacedPhases(t *testing.T) {
	for n := 3; n <= 12; n++ {
		phases := make([]float64, n)
		for i := range phases {
			phases[i] = float64(i) / float64(n) * 2 * math.Pi
		}
		got := kuramotoOrder(phases)
		if got > 1e-9 {
			t.Fatalf("n=%d evenly spaced phases: got %.12f, want ≈0", n, got)
		}
	}
}

func TestJaccardBigrams(t *testing.T) {
	if got := meanPairwiseJaccard([]string{"hello", "hello"}); math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("identical outputs: got %.9f, want 1.0", got)
	}
	if got := meanPairwiseJaccard([]string{"abab", "cdcd"}); got != 0 {
		t.Fatalf("disjoint bigrams: got %.9f, want 0", got)
	}
}

func TestConfidenceMonotone(t *testing.T) {
	prev := -1.0
	for n := 0; n <= 10000; n++ {
		c := confidence(n)
		if c <= prev {
			t.Fatalf("confidence not strictly increasing at n=%d: %.9f <= %.9f", n, c, prev)
		}
		if c >= 1 {
			t.Fatalf("confidence at n=%d reached %.9f, must stay below 1", n, c)
		}
		prev = c
	}
	// Known point: n=4 gives 1 - 1/(1+1) = 0.5.
	if got := confidence(4); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("confidence(4) = %.9f, want 0.5", got)
	}
}
