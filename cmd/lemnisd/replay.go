package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wiltonos/lemniscate/internal/replay"
)

// #region command

var replayFixturePath string

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a fixture and compare against its expectations",
	RunE:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayFixturePath, "fixture", "", "path to fixture JSON")
	_ = replayCmd.MarkFlagRequired("fixture")
	rootCmd.AddCommand(replayCmd)
}

// #endregion command

// #region replay

func runReplay(cmd *cobra.Command, args []string) error {
	f, err := replay.LoadFixture(replayFixturePath)
	if err != nil {
		return err
	}

	summary, results, err := replay.Run(f)
	if err != nil {
		return err
	}

	fmt.Printf("%-6s| %-10s| %-12s| %-12s| %s\n", "Step", "Measured", "Trend", "Dominant", "Match")
	fmt.Printf("%-6s+%-11s+%-13s+%-13s+%s\n", "------", "-----------", "-------------", "-------------", "------")
	for _, r := range results {
		measured := "—"
		if r.Measured != nil {
			measured = fmt.Sprintf("%.6f", *r.Measured)
		}
		trend := r.Trend
		if trend == "" {
			trend = "—"
		}
		match := "OK"
		if !r.Match {
			match = "DIFF"
		}
		fmt.Printf("%-6d| %-10s| %-12s| %-12s| %s\n", r.Index, measured, trend, r.DominantMode, match)
		for _, d := range r.Diffs {
			fmt.Printf("        %s\n", d)
		}
	}

	fmt.Printf("\nSummary: %d steps, %d match, %d diverge (%s)\n",
		summary.Steps, summary.Matches, summary.Divergences, summary.Description)

	if summary.Divergences > 0 {
		return fmt.Errorf("replay diverged on %d of %d steps", summary.Divergences, summary.Steps)
	}
	return nil
}

// #endregion replay
