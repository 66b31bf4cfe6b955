package engine

import "fmt"

// #region health

// HealthMetric is one named bounds check over a snapshot.
type HealthMetric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Pass  bool    `json:"pass"`
}

// HealthReport aggregates all bounds checks.
type HealthReport struct {
	Passed  bool           `json:"passed"`
	Reasons []string       `json:"reasons,omitempty"`
	Metrics []HealthMetric `json:"metrics"`
}

// CheckSnapshot validates a snapshot's numeric invariants: composite and
// per-scale coherence in [0,1], transition progress in [0,1], history within
// its cap.
func CheckSnapshot(s Snapshot, historyCap int) HealthReport {
	report := HealthReport{Passed: true}

	add := func(name string, value float64, pass bool, reason string) {
		report.Metrics = append(report.Metrics, HealthMetric{Name: name, Value: value, Pass: pass})
		if !pass {
			report.Passed = false
			report.Reasons = append(report.Reasons, reason)
		}
	}

	add("coherence", s.Coherence, inUnit(s.Coherence),
		fmt.Sprintf("composite coherence %.4f out of [0,1]", s.Coherence))

	for scale, st := range s.Scales {
		add(fmt.Sprintf("coherence_%s", scale), st.Coherence, inUnit(st.Coherence),
			fmt.Sprintf("%s coherence %.4f out of [0,1]", scale, st.Coherence))
		add(fmt.Sprintf("progress_%s", scale), st.TransitionProgress, inUnit(st.TransitionProgress),
			fmt.Sprintf("%s transition progress %.4f out of [0,1]", scale, st.TransitionProgress))
	}

	add("history_len", float64(s.HistoryLen), s.HistoryLen <= historyCap,
		fmt.Sprintf("history %d exceeds cap %d", s.HistoryLen, historyCap))

	return report
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}

// #endregion health
