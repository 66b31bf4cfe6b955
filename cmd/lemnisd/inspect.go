package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wiltonos/lemniscate/internal/journal"
	"github.com/wiltonos/lemniscate/internal/temporal"
)

// #region command

var (
	inspectDB       string
	inspectLast     int
	inspectHalfLife time.Duration
	inspectJSON     bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Dump recent snapshots and decayed coherence from the journal",
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectDB, "db", "lemniscate.db", "path to journal database")
	inspectCmd.Flags().IntVar(&inspectLast, "last", 20, "show N most recent snapshots")
	inspectCmd.Flags().DurationVar(&inspectHalfLife, "half-life", time.Hour, "half-life for decay-weighted coherence")
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "output as JSON instead of a table")
	rootCmd.AddCommand(inspectCmd)
}

// #endregion command

// #region inspect

type inspectRow struct {
	SnapshotID   string             `json:"snapshot_id"`
	CreatedAt    string             `json:"created_at"`
	DominantMode string             `json:"dominant_mode"`
	Coherence    float64            `json:"coherence"`
	QCTF         float64            `json:"qctf"`
	Scales       map[string]float64 `json:"scales"`
}

type inspectOutput struct {
	Snapshots []inspectRow       `json:"snapshots"`
	Decayed   map[string]float64 `json:"decayed_coherence"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	store, err := journal.NewStore(inspectDB)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer store.Close()

	recs, err := store.ListSnapshots(inspectLast)
	if err != nil {
		return err
	}

	out := inspectOutput{Decayed: make(map[string]float64, 3)}
	for _, rec := range recs {
		scales := make(map[string]float64, len(rec.ScaleCoherence))
		for scale, v := range rec.ScaleCoherence {
			scales[string(scale)] = v
		}
		out.Snapshots = append(out.Snapshots, inspectRow{
			SnapshotID:   rec.SnapshotID,
			CreatedAt:    rec.CreatedAt.UTC().Format(time.RFC3339),
			DominantMode: string(rec.DominantMode),
			Coherence:    rec.Coherence,
			QCTF:         rec.QCTF,
			Scales:       scales,
		})
	}
	for _, scale := range temporal.Scales() {
		v, err := store.DecayWeightedCoherence(scale, inspectHalfLife)
		if err != nil {
			return err
		}
		out.Decayed[string(scale)] = v
	}

	if inspectJSON {
		return printJSON(out)
	}

	if len(out.Snapshots) == 0 {
		fmt.Println("no snapshots recorded")
	} else {
		fmt.Printf("%-10s  %-20s  %-12s  %9s  %9s\n", "Snapshot", "Created", "Dominant", "Coherence", "QCTF")
		fmt.Printf("%-10s+-%-20s+-%-12s+-%9s+-%9s\n",
			"----------", "--------------------", "------------", "---------", "---------")
		for _, r := range out.Snapshots {
			fmt.Printf("%-10s  %-20s  %-12s  %9.4f  %9.4f\n",
				shortID(r.SnapshotID), r.CreatedAt, r.DominantMode, r.Coherence, r.QCTF)
		}
	}

	fmt.Printf("\nDecay-weighted coherence (half-life %s):\n", inspectHalfLife)
	for _, scale := range temporal.Scales() {
		fmt.Printf("  %-8s %.4f\n", scale, out.Decayed[string(scale)])
	}
	return nil
}

// #endregion inspect
