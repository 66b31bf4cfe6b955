package orchestrator

// #region scaffold

// Scaffold is a weighted knowledge repository whose coverage scales a
// heuristic stabilization force. It is plain numeric aggregation.
type Scaffold struct {
	gain          float64
	targetEntries int
	entries       map[string]component
}

// NewScaffold creates a scaffold. gain scales the stabilization force;
// targetEntries is the repository size treated as full coverage.
func NewScaffold(gain float64, targetEntries int) *Scaffold {
	if targetEntries < 1 {
		targetEntries = 1
	}
	return &Scaffold{
		gain:          gain,
		targetEntries: targetEntries,
		entries:       make(map[string]component),
	}
}

// Add stores or replaces a weighted knowledge entry. Non-positive weights
// are ignored.
func (s *Scaffold) Add(key string, value, weight float64) {
	if weight <= 0 {
		return
	}
	s.entries[key] = component{value: clamp01(value), weight: weight}
}

// Len reports the number of stored entries.
func (s *Scaffold) Len() int {
	return len(s.entries)
}

// WeightedAverage returns the weight-normalized mean of all entries, or 0
// when empty.
func (s *Scaffold) WeightedAverage() float64 {
	if len(s.entries) == 0 {
		return 0
	}
	var sum, weights float64
	for _, e := range s.entries {
		sum += e.value * e.weight
		weights += e.weight
	}
	return sum / weights
}

// Coverage reports repository fill as len/target, capped at 1.
func (s *Scaffold) Coverage() float64 {
	c := float64(len(s.entries)) / float64(s.targetEntries)
	if c > 1 {
		return 1
	}
	return c
}

// StabilizationForce is proportional to the supplied chaos level, scaled by
// gain and repository coverage.
func (s *Scaffold) StabilizationForce(chaos float64) float64 {
	return clamp01(chaos) * s.gain * s.Coverage()
}

// #endregion scaffold
