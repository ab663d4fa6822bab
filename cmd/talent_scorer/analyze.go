package main

import (
	"context"
	"fmt"

	"github.com/jonathan/talent-scorer/internal/ranking"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the applicant pool",
	Long:  "Reports the most common skills (after alias normalization) and the education level and location distributions of candidate profiles.",
	RunE:  runAnalyze,
}

var (
	analyzeCandidates string
	analyzeJobID      string
	analyzeTop        int
	analyzeOutput     string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeCandidates, "candidates", "c", "", "Path to candidate profiles JSON/YAML file (default: database)")
	analyzeCmd.Flags().StringVar(&analyzeJobID, "job-id", "", "Only analyze stored candidates scored against this job")
	analyzeCmd.Flags().IntVarP(&analyzeTop, "top", "n", ranking.DefaultTopSkills, "Number of top skills to report")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output analytics JSON file (default: stdout)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	src := candidateSource{profilesPath: analyzeCandidates, jobID: analyzeJobID}
	profiles, err := src.loadProfiles(ctx, a)
	if err != nil {
		return fmt.Errorf("failed to load candidates: %w", err)
	}

	stats := ranking.Analyze(profiles, analyzeTop)

	if a.cfg.Verbose {
		a.printer.PrintProfileStats(stats)
		if analyzeOutput == "" {
			return nil
		}
	}

	return a.writeJSON(analyzeOutput, stats)
}
