package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/wiltonos/lemniscate/internal/engine"
	"github.com/wiltonos/lemniscate/internal/journal"
	"github.com/wiltonos/lemniscate/internal/measure"
	"github.com/wiltonos/lemniscate/internal/replay"
	"github.com/wiltonos/lemniscate/internal/temporal"
)

// #region command

var (
	exportDB    string
	exportOut   string
	exportScale string
	exportLast  int
	exportSeed  int64
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export journal measurements as a replay fixture",
	Long: `export turns recorded measurements into a replay fixture. Each
measurement becomes one step feeding a phase pair at ±acos(value), whose
Kuramoto order parameter reproduces the recorded value exactly; the step
expects that value back.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDB, "db", "lemniscate.db", "path to journal database")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output fixture JSON path")
	exportCmd.Flags().StringVar(&exportScale, "scale", "micro", "scale whose measurements to export")
	exportCmd.Flags().IntVar(&exportLast, "last", 8, "number of most recent measurements to export")
	exportCmd.Flags().Int64Var(&exportSeed, "seed", 1, "fixture seed")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

// #endregion command

// #region export

func runExport(cmd *cobra.Command, args []string) error {
	scale, err := temporal.ParseScale(exportScale)
	if err != nil {
		return err
	}

	store, err := journal.NewStore(exportDB)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer store.Close()

	recs, err := store.ListMeasurements(scale, exportLast)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		return fmt.Errorf("no measurements recorded for scale %s", scale)
	}
	// ListMeasurements returns newest first; fixtures play chronologically.
	for i, j := 0, len(recs)-1; i < j; i, j = i+1, j-1 {
		recs[i], recs[j] = recs[j], recs[i]
	}

	f := buildFixture(scale, recs, exportSeed)
	if err := replay.WriteFixture(exportOut, f); err != nil {
		return err
	}
	fmt.Printf("wrote %d steps to %s\n", len(f.Steps), exportOut)
	return nil
}

// buildFixture encodes each measurement as a phase pair at ±acos(value).
// Steps are separated by enough idle cycles to expire the measurement
// window, so each pair is measured in isolation.
func buildFixture(scale temporal.Scale, recs []journal.MeasurementRecord, seed int64) *replay.Fixture {
	gapCycles := int(measure.DefaultConfig().Window/engine.DefaultConfig().CycleInterval) + 1

	f := &replay.Fixture{
		Description: fmt.Sprintf("exported %s measurements", scale),
		Seed:        seed,
	}
	for _, rec := range recs {
		v := math.Min(math.Max(rec.Value, 0), 1)
		angle := math.Acos(v)
		value := v
		f.Steps = append(f.Steps, replay.FixtureStep{
			Cycles: gapCycles,
			Observations: []replay.FixtureObservation{
				{Source: "export-a", Scale: string(scale), Kind: "phase", Phase: angle},
				{Source: "export-b", Scale: string(scale), Kind: "phase", Phase: -angle},
			},
			Expect: &replay.FixtureExpect{
				Scale:       string(scale),
				Measurement: &value,
				Tolerance:   1e-9,
			},
		})
	}
	return f
}

// #endregion export
