package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/talent-scorer/internal/db"
	"github.com/jonathan/talent-scorer/internal/loader"
	"github.com/jonathan/talent-scorer/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score candidate profiles against a job",
	Long: `Scores one or more candidate profiles (JSON or YAML, a single object or a list) against a
job spec, producing one ScoreBreakdown per candidate. Candidates that fail to score are reported
and skipped; the rest of the batch is unaffected.`,
	RunE: runScore,
}

var (
	scoreJob        string
	scoreJobID      string
	scoreCandidates string
	scoreOutput     string
	scoreSave       bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to JobRequirementSpec JSON/YAML file")
	scoreCmd.Flags().StringVar(&scoreJobID, "job-id", "", "ID of a stored job (requires a database)")
	scoreCmd.Flags().StringVarP(&scoreCandidates, "candidates", "c", "", "Path to candidate profiles JSON/YAML file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output ScoreBreakdown JSON file (default: stdout)")
	scoreCmd.Flags().BoolVar(&scoreSave, "save", false, "Persist breakdowns and profiles to the database")

	if err := scoreCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	var store *db.DB
	if scoreSave || scoreJobID != "" {
		store, err = a.openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	// 1. Load job and candidates
	job, err := a.resolveJob(ctx, store, scoreJob, scoreJobID)
	if err != nil {
		return fmt.Errorf("failed to load job: %w", err)
	}
	if job == nil {
		return fmt.Errorf("either --job or --job-id must be provided (via flag or config)")
	}

	candidates, err := loader.LoadCandidates(scoreCandidates)
	if err != nil {
		return fmt.Errorf("failed to load candidates: %w", err)
	}

	// 2. Score
	results, err := a.engine().ScoreBatch(ctx, job, candidates)
	if err != nil {
		return fmt.Errorf("failed to score candidates: %w", err)
	}

	breakdowns := make([]types.ScoreBreakdown, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: candidate %s not scored: %v\n", r.CandidateID, r.Err)
			continue
		}
		breakdowns = append(breakdowns, *r.Breakdown)
	}

	// 3. Persist
	if store != nil && scoreSave {
		for _, r := range results {
			if r.Err != nil {
				continue
			}
			if err := store.SaveBreakdown(ctx, &candidates[r.Index], r.Breakdown); err != nil {
				return fmt.Errorf("failed to save breakdowns: %w", err)
			}
		}
		a.log.Info("breakdowns saved", zap.Int("count", len(breakdowns)))
	}

	// 4. Output
	checkBreakdowns(breakdowns)
	if err := a.writeJSON(scoreOutput, breakdowns); err != nil {
		return err
	}

	if a.cfg.Verbose {
		for i := range breakdowns {
			a.printer.PrintBreakdown(&breakdowns[i])
		}
		a.printer.PrintBatchFailures(results)
	}

	if len(breakdowns) == 0 && len(candidates) > 0 {
		return fmt.Errorf("no candidates could be scored")
	}

	if scoreOutput != "" {
		_, _ = fmt.Fprintf(a.out, "Successfully scored %d of %d candidates to %s\n", len(breakdowns), len(candidates), scoreOutput)
	}
	return nil
}
