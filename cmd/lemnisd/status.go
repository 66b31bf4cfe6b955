package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wiltonos/lemniscate/internal/rpc"
	"github.com/wiltonos/lemniscate/internal/temporal"
)

// #region command

var (
	statusAddr string
	statusJSON bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Query a running daemon for its current snapshot",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusAddr, "addr", "localhost:50061", "daemon gRPC address")
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output as JSON instead of text")
	rootCmd.AddCommand(statusCmd)
}

// #endregion command

// #region status

func runStatus(cmd *cobra.Command, args []string) error {
	client, err := rpc.NewClient(statusAddr)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	snap, err := client.GetSnapshot(ctx)
	if err != nil {
		return err
	}

	if statusJSON {
		return printJSON(snap)
	}

	fmt.Printf("Daemon:    %s\n", statusAddr)
	fmt.Printf("As of:     %s\n", snap.At.UTC().Format(time.RFC3339))
	fmt.Printf("Cycle:     %d\n", snap.Cycle)
	fmt.Printf("Dominant:  %s\n", snap.DominantMode)
	fmt.Printf("Coherence: %.4f\n", snap.Coherence)
	fmt.Printf("QCTF:      %.4f\n", snap.QCTF)

	fmt.Printf("\n%-8s  %-12s  %-12s  %9s  %9s\n", "Scale", "Mode", "Target", "Coherence", "Progress")
	for _, scale := range temporal.Scales() {
		sv, ok := snap.Scales[string(scale)]
		if !ok {
			continue
		}
		fmt.Printf("%-8s  %-12s  %-12s  %9.4f  %9.4f\n",
			scale, sv.Mode, sv.TargetMode, sv.Coherence, sv.TransitionProgress)
	}
	return nil
}

// #endregion status
