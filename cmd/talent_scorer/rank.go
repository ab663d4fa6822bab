package main

import (
	"context"
	"fmt"

	"github.com/jonathan/talent-scorer/internal/ranking"
	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank scored candidates by total score",
	Long: `Orders breakdowns by total score (highest first); ties go to the earlier computed_at, then
input order. Reads breakdowns from --in, or from the database when --in is omitted.`,
	RunE: runRank,
}

var (
	rankInput  string
	rankJobID  string
	rankStatus string
	rankTop    int
	rankOutput string
)

func init() {
	rankCmd.Flags().StringVarP(&rankInput, "in", "i", "", "Path to ScoreBreakdown JSON file (default: database)")
	rankCmd.Flags().StringVar(&rankJobID, "job-id", "", "Only rank candidates scored against this job")
	rankCmd.Flags().StringVar(&rankStatus, "status", "", "Only rank candidates with this status")
	rankCmd.Flags().IntVarP(&rankTop, "top", "n", 0, "Keep only the top N candidates (0 = all)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output ranked JSON file (default: stdout)")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	src := candidateSource{breakdownsPath: rankInput, jobID: rankJobID, status: rankStatus}
	breakdowns, _, err := src.load(ctx, a)
	if err != nil {
		return fmt.Errorf("failed to load breakdowns: %w", err)
	}

	ranked := ranking.Rank(breakdowns)
	if rankTop > 0 {
		ranked = ranking.Top(ranked, rankTop)
	}

	if err := a.writeJSON(rankOutput, ranked); err != nil {
		return err
	}

	if a.cfg.Verbose {
		a.printer.PrintRanking(ranked)
	}

	if rankOutput != "" {
		_, _ = fmt.Fprintf(a.out, "Successfully ranked %d candidates to %s\n", len(ranked), rankOutput)
	}
	return nil
}
