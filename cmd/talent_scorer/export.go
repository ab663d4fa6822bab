package main

import (
	"context"
	"fmt"

	"github.com/jonathan/talent-scorer/internal/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export ranked candidates to CSV",
	Long: `Writes one CSV row per candidate in rank order: Rank, Name, Email, Phone, Location,
Total Score, Status, Mode, then the raw score of each criterion. Estimated candidates have
empty criterion columns.`,
	RunE: runExport,
}

var (
	exportInput      string
	exportCandidates string
	exportJobID      string
	exportStatus     string
	exportOutput     string
)

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "in", "i", "", "Path to ScoreBreakdown JSON file (default: database)")
	exportCmd.Flags().StringVarP(&exportCandidates, "candidates", "c", "", "Path to candidate profiles for contact columns (with --in)")
	exportCmd.Flags().StringVar(&exportJobID, "job-id", "", "Only export candidates scored against this job")
	exportCmd.Flags().StringVar(&exportStatus, "status", "", "Only export candidates with this status")
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "Path to output CSV file (required)")

	if err := exportCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	src := candidateSource{
		breakdownsPath: exportInput,
		profilesPath:   exportCandidates,
		jobID:          exportJobID,
		status:         exportStatus,
	}
	breakdowns, profiles, err := src.load(ctx, a)
	if err != nil {
		return fmt.Errorf("failed to load candidates: %w", err)
	}

	if err := export.WriteCSVFile(exportOutput, breakdowns, export.ProfileIndex(profiles)); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(a.out, "Successfully exported %d candidates to %s\n", len(breakdowns), exportOutput)
	return nil
}
