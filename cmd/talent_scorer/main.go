// Package main implements the talent_scorer CLI for scoring, ranking and reviewing job candidates.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talent_scorer",
	Short: "Explainable candidate scoring against weighted job requirements",
	Long: `talent_scorer scores candidate profiles against a job's weighted requirements
(education, experience, skills, bootcamp, portfolio, location), ranks and summarizes the
results, and keeps them in PostgreSQL for review.

Configuration can be loaded from a JSON or YAML file using --config. DATABASE_URL and
TALENT_SCORER_WORKERS override the file; command-line flags override both.`,
	SilenceUsage: true,
}

var (
	rootConfigPath string
	rootLogJSON    bool
	rootDebug      bool
	rootVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to config file (.json, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVar(&rootLogJSON, "log-json", false, "Emit JSON logs on stderr")
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print human-readable summaries")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
