package measure

import "math"

// #region cosine

// cosineSimilarity computes cosine similarity between two vectors.
// Returns 0 for zero-length, zero-norm, or mismatched vectors.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}

// meanPairwiseCosine averages cosine similarity over all vector pairs and
// normalizes from [−1,1] to [0,1]. Identical vectors give 1, orthogonal 0.5.
func meanPairwiseCosine(vectors [][]float64) float64 {
	var sum float64
	var pairs int
	for i := 0; i < len(vectors); i++ {
		for j := i + 1; j < len(vectors); j++ {
			sum += cosineSimilarity(vectors[i], vectors[j])
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}
	return (1 + sum/float64(pairs)) / 2
}

// #endregion cosine

// #region kuramoto

// kuramotoOrder computes the Kuramoto order parameter R = |mean(e^{iθ})|.
// R is 1 for perfectly aligned phases and approaches 0 for phases spread
// evenly around the circle.
func kuramotoOrder(phases []float64) float64 {
	if len(phases) == 0 {
		return 0
	}
	var sumSin, sumCos float64
	for _, p := range phases {
		sumSin += math.Sin(p)
		sumCos += math.Cos(p)
	}
	n := float64(len(phases))
	return math.Hypot(sumCos/n, sumSin/n)
}

// #endregion kuramoto

// #region jaccard

// bigramSet builds the set of character bigrams in s.
func bigramSet(s string) map[string]struct{} {
	runes := []rune(s)
	set := make(map[string]struct{}, len(runes))
	for i := 0; i+1 < len(runes); i++ {
		set[string(runes[i:i+2])] = struct{}{}
	}
	return set
}

// jaccard computes |a∩b| / |a∪b| for two bigram sets.
// Two empty sets count as fully similar.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	var intersection int
	for k := range a {
		if _, ok := b[k]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// meanPairwiseJaccard averages bigram Jaccard similarity over all text pairs.
func meanPairwiseJaccard(outputs []string) float64 {
	sets := make([]map[string]struct{}, len(outputs))
	for i, o := range outputs {
		sets[i] = bigramSet(o)
	}
	var sum float64
	var pairs int
	for i := 0; i < len(sets); i++ {
		for j := i + 1; j < len(sets); j++ {
			sum += jaccard(sets[i], sets[j])
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}
	return sum / float64(pairs)
}

// #endregion jaccard

// #region confidence

// confidence grows monotonically with sample count toward 1.
func confidence(n int) float64 {
	return 1 - 1/(1+math.Sqrt(float64(n))/2)
}

// #endregion confidence
