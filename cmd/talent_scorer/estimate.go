package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/talent-scorer/internal/db"
	"github.com/jonathan/talent-scorer/internal/loader"
	"github.com/jonathan/talent-scorer/internal/scoring"
	"github.com/jonathan/talent-scorer/internal/types"
	"github.com/spf13/cobra"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate scores for CV files that could not be extracted",
	Long: `Produces degraded-mode breakdowns from CV file metadata (name and size) alone. The
estimate is deterministic, lies in [40, 100], is marked "estimated" and is always placed in
review. It is not a fitness judgment.`,
	RunE: runEstimate,
}

var (
	estimateFiles       []string
	estimateJob         string
	estimateJobID       string
	estimateCandidateID string
	estimateName        string
	estimateEmail       string
	estimateOutput      string
	estimateSave        bool
)

func init() {
	estimateCmd.Flags().StringSliceVarP(&estimateFiles, "file", "f", nil, "Path to a CV file; repeat for several (required)")
	estimateCmd.Flags().StringVarP(&estimateJob, "job", "j", "", "Path to JobRequirementSpec JSON/YAML file (optional)")
	estimateCmd.Flags().StringVar(&estimateJobID, "job-id", "", "ID of a stored job (requires a database)")
	estimateCmd.Flags().StringVar(&estimateCandidateID, "candidate-id", "", "Candidate ID (single file only; default: generated)")
	estimateCmd.Flags().StringVar(&estimateName, "name", "", "Candidate name (single file only)")
	estimateCmd.Flags().StringVar(&estimateEmail, "email", "", "Candidate email (single file only)")
	estimateCmd.Flags().StringVarP(&estimateOutput, "out", "o", "", "Path to output ScoreBreakdown JSON file (default: stdout)")
	estimateCmd.Flags().BoolVar(&estimateSave, "save", false, "Persist breakdowns to the database")

	if err := estimateCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	if len(estimateFiles) > 1 && (estimateCandidateID != "" || estimateName != "" || estimateEmail != "") {
		return fmt.Errorf("--candidate-id, --name and --email apply to a single --file only")
	}

	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	var store *db.DB
	if estimateSave || estimateJobID != "" {
		store, err = a.openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	job, err := a.resolveJob(ctx, store, estimateJob, estimateJobID)
	if err != nil {
		return fmt.Errorf("failed to load job: %w", err)
	}

	engine := a.engine()
	breakdowns := make([]types.ScoreBreakdown, 0, len(estimateFiles))
	for _, path := range estimateFiles {
		meta, err := loader.StatFile(path)
		if err != nil {
			return err
		}

		candidateID := estimateCandidateID
		if candidateID == "" {
			candidateID = uuid.NewString()
		}

		b := engine.Estimate(scoring.FileMeta{
			CandidateID: candidateID,
			Name:        estimateName,
			Email:       estimateEmail,
			Filename:    meta.Filename,
			SizeBytes:   meta.SizeBytes,
		}, job)

		if store != nil && estimateSave {
			if err := store.SaveBreakdown(ctx, nil, b); err != nil {
				return fmt.Errorf("failed to save estimate: %w", err)
			}
		}
		breakdowns = append(breakdowns, *b)
	}

	checkBreakdowns(breakdowns)
	if err := a.writeJSON(estimateOutput, breakdowns); err != nil {
		return err
	}

	if a.cfg.Verbose {
		for i := range breakdowns {
			a.printer.PrintBreakdown(&breakdowns[i])
		}
	}

	if estimateOutput != "" {
		_, _ = fmt.Fprintf(a.out, "Successfully estimated %d candidates to %s\n", len(breakdowns), estimateOutput)
	}
	return nil
}
