package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wiltonos/lemniscate/internal/engine"
	"github.com/wiltonos/lemniscate/internal/temporal"
)

// #region command

var (
	simCycles int
	simSeed   int64
	simJSON   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run N engine cycles offline and report the end state",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simCycles, "cycles", 500, "number of cycles to run")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 1, "random seed")
	simulateCmd.Flags().BoolVar(&simJSON, "json", false, "output as JSON instead of text")
	rootCmd.AddCommand(simulateCmd)
}

// #endregion command

// #region simulate

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg := engine.DefaultConfig()
	cfg.Seed = simSeed
	cfg.SnapshotEvery = 0

	eng := engine.New(cfg, zap.NewNop())
	for i := 0; i < simCycles; i++ {
		eng.ProcessCycle()
	}
	snap := eng.Snapshot()

	if simJSON {
		return printJSON(snap)
	}
	renderSnapshot(os.Stdout, snap)
	return nil
}

// renderSnapshot prints an engine snapshot as a fixed-width table.
func renderSnapshot(w io.Writer, snap engine.Snapshot) {
	fmt.Fprintf(w, "Cycle:     %d\n", snap.Cycle)
	fmt.Fprintf(w, "Dominant:  %s\n", snap.DominantMode)
	fmt.Fprintf(w, "Coherence: %.4f\n", snap.Coherence)
	fmt.Fprintf(w, "QCTF:      %.4f\n", snap.QCTF)
	fmt.Fprintf(w, "History:   %d entries\n", snap.HistoryLen)

	fmt.Fprintf(w, "\n%-8s  %-12s  %-12s  %9s  %9s  %s\n",
		"Scale", "Mode", "Target", "Coherence", "Progress", "Trend")
	fmt.Fprintf(w, "%-8s+-%-12s+-%-12s+-%9s+-%9s+-%s\n",
		"--------", "------------", "------------", "---------", "---------", "----------")
	for _, scale := range temporal.Scales() {
		st, ok := snap.Scales[scale]
		if !ok {
			continue
		}
		trend := "—"
		if st.Attractor != nil {
			trend = string(st.Attractor.Trend)
			if st.Attractor.Approaching {
				trend += " (approaching)"
			}
		}
		fmt.Fprintf(w, "%-8s  %-12s  %-12s  %9.4f  %9.4f  %s\n",
			scale, st.Mode, st.TargetMode, st.Coherence, st.TransitionProgress, trend)
	}
}

// #endregion simulate
