package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/talent-scorer/internal/db"
	"github.com/jonathan/talent-scorer/internal/types"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Override the review status of a stored candidate",
	Long: `Sets a stored candidate's status to shortlisted, interview, review or rejected. Scoring
never assigns interview; this command is how a reviewer moves a candidate there. The score
itself is left unchanged.`,
	RunE: runStatus,
}

var (
	statusCandidateID string
	statusValue       string
)

func init() {
	statusCmd.Flags().StringVar(&statusCandidateID, "candidate-id", "", "Candidate ID (required)")
	statusCmd.Flags().StringVarP(&statusValue, "status", "s", "", "New status: shortlisted, interview, review or rejected (required)")

	if err := statusCmd.MarkFlagRequired("candidate-id"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate-id flag as required: %v", err))
	}
	if err := statusCmd.MarkFlagRequired("status"); err != nil {
		panic(fmt.Sprintf("failed to mark status flag as required: %v", err))
	}

	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	status, err := types.ParseStatus(statusValue)
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

	if err := store.UpdateStatus(ctx, statusCandidateID, status); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("candidate %s not found", statusCandidateID)
		}
		return err
	}

	_, _ = fmt.Fprintf(a.out, "Successfully set candidate %s to %s\n", statusCandidateID, status)
	return nil
}
