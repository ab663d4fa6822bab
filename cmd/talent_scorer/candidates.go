package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/talent-scorer/internal/db"
	"github.com/jonathan/talent-scorer/internal/types"
	"github.com/spf13/cobra"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Browse stored candidates",
}

var candidatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored candidates, highest score first",
	RunE:  runCandidatesList,
}

var candidatesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a stored candidate with its breakdown",
	RunE:  runCandidatesShow,
}

var candidatesDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a stored candidate",
	RunE:  runCandidatesDelete,
}

var (
	candidatesJobID    string
	candidatesStatus   string
	candidatesMinScore float64
	candidatesMaxScore float64
	candidatesSearch   string
	candidatesLimit    int
	candidatesOffset   int
	candidateIDFlag    string
)

func init() {
	f := candidatesListCmd.Flags()
	f.StringVar(&candidatesJobID, "job-id", "", "Only candidates scored against this job")
	f.StringVar(&candidatesStatus, "status", "", "Only candidates with this status")
	f.Float64Var(&candidatesMinScore, "min-score", 0, "Minimum total score")
	f.Float64Var(&candidatesMaxScore, "max-score", 100, "Maximum total score")
	f.StringVar(&candidatesSearch, "search", "", "Case-insensitive match on name or email")
	f.IntVar(&candidatesLimit, "limit", 50, "Maximum number of candidates (0 = no limit)")
	f.IntVar(&candidatesOffset, "offset", 0, "Number of candidates to skip")

	candidatesShowCmd.Flags().StringVar(&candidateIDFlag, "id", "", "Candidate ID (required)")
	candidatesDeleteCmd.Flags().StringVar(&candidateIDFlag, "id", "", "Candidate ID (required)")

	if err := candidatesShowCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}
	if err := candidatesDeleteCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}

	candidatesCmd.AddCommand(candidatesListCmd, candidatesShowCmd, candidatesDeleteCmd)
	rootCmd.AddCommand(candidatesCmd)
}

// candidateFilterFromFlags builds the store filter; score bounds apply only when set explicitly
func candidateFilterFromFlags(cmd *cobra.Command) (db.CandidateFilter, error) {
	filter := db.CandidateFilter{
		JobID:  candidatesJobID,
		Search: candidatesSearch,
		Limit:  candidatesLimit,
		Offset: candidatesOffset,
	}

	if candidatesStatus != "" {
		status, err := types.ParseStatus(candidatesStatus)
		if err != nil {
			return db.CandidateFilter{}, err
		}
		filter.Status = status
	}
	if cmd.Flags().Changed("min-score") {
		minScore := candidatesMinScore
		filter.MinScore = &minScore
	}
	if cmd.Flags().Changed("max-score") {
		maxScore := candidatesMaxScore
		filter.MaxScore = &maxScore
	}
	if filter.MinScore != nil && filter.MaxScore != nil && *filter.MinScore > *filter.MaxScore {
		return db.CandidateFilter{}, fmt.Errorf("--min-score must not exceed --max-score")
	}

	if err := filter.Validate(); err != nil {
		return db.CandidateFilter{}, fmt.Errorf("invalid filter: %w", err)
	}
	return filter, nil
}

func runCandidatesList(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	filter, err := candidateFilterFromFlags(cmd)
	if err != nil {
		return err
	}

	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.ListCandidates(ctx, filter)
	if err != nil {
		return err
	}

	if a.cfg.Verbose {
		a.printer.PrintRanking(db.Breakdowns(records))
		return nil
	}
	return a.writeJSON("", records)
}

func runCandidatesShow(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.GetCandidate(ctx, candidateIDFlag)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("candidate %s not found", candidateIDFlag)
	}

	if a.cfg.Verbose {
		a.printer.PrintBreakdown(&rec.Breakdown)
		return nil
	}
	return a.writeJSON("", rec)
}

func runCandidatesDelete(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteCandidate(ctx, candidateIDFlag); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("candidate %s not found", candidateIDFlag)
		}
		return err
	}

	_, _ = fmt.Fprintf(a.out, "Successfully deleted candidate %s\n", candidateIDFlag)
	return nil
}
