package main

import (
	"context"
	"fmt"

	"github.com/jonathan/talent-scorer/internal/ranking"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize scored candidates",
	Long:  "Reports the candidate count, counts per status, estimated count, average score and the score distribution over the status bands.",
	RunE:  runStats,
}

var (
	statsInput  string
	statsJobID  string
	statsOutput string
)

func init() {
	statsCmd.Flags().StringVarP(&statsInput, "in", "i", "", "Path to ScoreBreakdown JSON file (default: database)")
	statsCmd.Flags().StringVar(&statsJobID, "job-id", "", "Only include candidates scored against this job")
	statsCmd.Flags().StringVarP(&statsOutput, "out", "o", "", "Path to output stats JSON file (default: stdout)")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	src := candidateSource{breakdownsPath: statsInput, jobID: statsJobID}
	breakdowns, _, err := src.load(ctx, a)
	if err != nil {
		return fmt.Errorf("failed to load breakdowns: %w", err)
	}

	th := a.cfg.Thresholds()
	stats := ranking.AggregateWith(breakdowns, th)

	if a.cfg.Verbose {
		a.printer.PrintStats(stats, th)
		if statsOutput == "" {
			return nil
		}
	}

	return a.writeJSON(statsOutput, stats)
}
