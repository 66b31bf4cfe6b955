package metrics

// #region metric-type

// Type identifies a tracked metric series.
type Type string

const (
	TypeCoherence Type = "coherence"
	TypeEntropy   Type = "entropy"
	TypeQCTF      Type = "qctf"
)

// #endregion metric-type

// #region band

// Band is the temporal smoothing band a sample lands in. Instant is the raw
// feed; micro/meso/macro are progressively smoothed views.
type Band string

const (
	BandInstant Band = "instant"
	BandMicro   Band = "micro"
	BandMeso    Band = "meso"
	BandMacro   Band = "macro"
)

// Bands returns all bands in smoothing order.
func Bands() []Band {
	return []Band{BandInstant, BandMicro, BandMeso, BandMacro}
}

// #endregion band

// #region config

// Config holds sample retention and propagation parameters.
type Config struct {
	SampleCap int // max retained samples per (type, band) series

	MicroWeight float64 // smoothing weight for instant → micro
	MesoWeight  float64 // smoothing weight for instant → meso
	MacroWeight float64 // smoothing weight for instant → macro

	MesoChance  float64 // probability an instant sample reaches meso
	MacroChance float64 // probability an instant sample reaches macro
}

// DefaultConfig returns the standard metrics parameters.
func DefaultConfig() Config {
	return Config{
		SampleCap:   128,
		MicroWeight: 0.30,
		MesoWeight:  0.15,
		MacroWeight: 0.05,
		MesoChance:  0.20,
		MacroChance: 0.05,
	}
}

// #endregion config
