package measure

import (
	"math"

	"github.com/wiltonos/lemniscate/internal/temporal"
)

// #region attractor-detection

// approachRadius is the maximum distance at which a converging trend is
// reported as approaching the attractor.
const approachRadius = 0.15

// trendWindow is how many trailing measurements the trend classifier reads.
const trendWindow = 3

// Attractor analyzes the last three measurements for a scale and reports
// the trend relative to the nearer of the two fixed attractors. Returns nil
// when fewer than three measurements exist.
func (e *Engine) Attractor(scale temporal.Scale) *AttractorReport {
	h := e.history[scale]
	if len(h) < trendWindow {
		return nil
	}
	tail := h[len(h)-trendWindow:]

	latest := tail[trendWindow-1].Value
	attractor := nearerAttractor(latest)

	// Distance of each trailing value to the chosen attractor.
	var dists [trendWindow]float64
	for i, m := range tail {
		dists[i] = math.Abs(m.Value - attractor)
	}

	trend := TrendStable
	if dists[0] > dists[1] && dists[1] > dists[2] {
		trend = TrendConverging
	} else if dists[0] < dists[1] && dists[1] < dists[2] {
		trend = TrendDiverging
	}

	return &AttractorReport{
		Scale:       scale,
		Attractor:   attractor,
		Distance:    dists[trendWindow-1],
		Trend:       trend,
		Approaching: trend == TrendConverging && dists[trendWindow-1] <= approachRadius,
	}
}

// nearerAttractor picks whichever fixed attractor is closer to v.
func nearerAttractor(v float64) float64 {
	if math.Abs(v-temporal.StabilityCoherence) <= math.Abs(v-temporal.ExplorationCoherence) {
		return temporal.StabilityCoherence
	}
	return temporal.ExplorationCoherence
}

// #endregion attractor-detection
