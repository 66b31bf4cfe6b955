package engine

import (
	"time"

	"github.com/wiltonos/lemniscate/internal/controller"
	"github.com/wiltonos/lemniscate/internal/measure"
	"github.com/wiltonos/lemniscate/internal/metrics"
	"github.com/wiltonos/lemniscate/internal/orchestrator"
	"github.com/wiltonos/lemniscate/internal/temporal"
	"github.com/wiltonos/lemniscate/internal/wave"
)

// #region config

// Config bundles all subsystem configs plus runtime timing.
type Config struct {
	CycleInterval time.Duration // wall time between processing cycles
	SnapshotEvery int           // persist every N cycles; 0 disables
	Seed          int64         // seeds the shared random source

	Wave         wave.Config
	Metrics      metrics.Config
	Measure      measure.Config
	Controller   controller.Config
	Orchestrator orchestrator.Config
}

// DefaultConfig returns the standard engine parameters.
func DefaultConfig() Config {
	return Config{
		CycleInterval: 100 * time.Millisecond,
		SnapshotEvery: 100,
		Seed:          1,
		Wave:          wave.DefaultConfig(),
		Metrics:       metrics.DefaultConfig(),
		Measure:       measure.DefaultConfig(),
		Controller:    controller.DefaultConfig(),
		Orchestrator:  orchestrator.DefaultConfig(),
	}
}

// #endregion config

// #region snapshot

// ScaleStatus is the per-scale slice of a snapshot.
type ScaleStatus struct {
	Mode               temporal.Mode            `json:"mode"`
	TargetMode         temporal.Mode            `json:"target_mode"`
	Coherence          float64                  `json:"coherence"`
	TransitionProgress float64                  `json:"transition_progress"`
	Attractor          *measure.AttractorReport `json:"attractor,omitempty"`
	LatestMeasurement  *measure.Measurement     `json:"latest_measurement,omitempty"`
}

// Snapshot is a consistent view of the whole engine at one cycle.
type Snapshot struct {
	At           time.Time                      `json:"at"`
	Cycle        int                            `json:"cycle"`
	DominantMode temporal.Mode                  `json:"dominant_mode"`
	Coherence    float64                        `json:"coherence"`
	QCTF         float64                        `json:"qctf"`
	Scales       map[temporal.Scale]ScaleStatus `json:"scales"`
	HistoryLen   int                            `json:"history_len"`
}

// #endregion snapshot
