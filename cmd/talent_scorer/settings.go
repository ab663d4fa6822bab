package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/talent-scorer/internal/config"
	"github.com/jonathan/talent-scorer/internal/db"
	"github.com/jonathan/talent-scorer/internal/loader"
	"github.com/jonathan/talent-scorer/internal/logger"
	"github.com/jonathan/talent-scorer/internal/observability"
	"github.com/jonathan/talent-scorer/internal/schemas"
	"github.com/jonathan/talent-scorer/internal/scoring"
	"github.com/jonathan/talent-scorer/internal/types"
	schemafiles "github.com/jonathan/talent-scorer/schemas"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app bundles what every command needs after settings are resolved
type app struct {
	cfg     config.Config
	log     *zap.Logger
	out     io.Writer
	printer *observability.Printer
}

// setup resolves configuration (file, then environment, then flags, then defaults) and builds the logger
func setup(cmd *cobra.Command) (*app, error) {
	// Step 1: Load config file if provided
	var cfg config.Config
	if rootConfigPath != "" {
		loadedCfg, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return nil, err
		}
		cfg = *loadedCfg
	}

	// Step 2: Environment overrides
	if err := cfg.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	// Step 3: Apply CLI overrides (only if the flag was explicitly set)
	if cmd.Flags().Changed("log-json") {
		cfg.LogJSON = rootLogJSON
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = rootDebug
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = rootVerbose
	}

	// Step 4: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	out := cmd.OutOrStdout()
	return &app{
		cfg:     cfg,
		log:     log,
		out:     out,
		printer: observability.NewPrinter(out),
	}, nil
}

func (a *app) engine() *scoring.Engine {
	return scoring.NewEngine(scoring.Options{
		Thresholds: a.cfg.Thresholds(),
		Workers:    a.cfg.Workers,
		Logger:     a.log,
	})
}

func (a *app) openStore(ctx context.Context) (*db.DB, error) {
	store, err := db.Connect(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return store, nil
}

func (a *app) close() {
	_ = a.log.Sync()
}

// resolveJob loads the job from a file, from the store by ID, or from the configured default file.
// Returns nil, nil when none of them is set.
func (a *app) resolveJob(ctx context.Context, store *db.DB, jobPath, jobID string) (*types.JobRequirementSpec, error) {
	if jobPath != "" && jobID != "" {
		return nil, fmt.Errorf("--job and --job-id are mutually exclusive; provide only one")
	}

	switch {
	case jobPath != "":
		return loader.LoadJobSpec(jobPath)
	case jobID != "":
		if store == nil {
			return nil, fmt.Errorf("--job-id requires a database connection")
		}
		job, err := store.GetJob(ctx, jobID)
		if err != nil {
			return nil, err
		}
		if job == nil {
			return nil, fmt.Errorf("job %s not found", jobID)
		}
		return &job.Spec, nil
	case a.cfg.JobSpec != "":
		return loader.LoadJobSpec(a.cfg.JobSpec)
	}
	return nil, nil
}

// writeJSON writes v as indented JSON to path, or to the command output when path is empty
func (a *app) writeJSON(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if path == "" {
		_, err := fmt.Fprintln(a.out, string(jsonOutput))
		return err
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// checkBreakdowns validates output against the breakdown schema. Failures only warn.
func checkBreakdowns(breakdowns []types.ScoreBreakdown) {
	for i := range breakdowns {
		if err := schemas.ValidateValue(schemafiles.ScoreBreakdown, breakdowns[i]); err != nil {
			// Output validation is a safety check, not a requirement
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed for %s: %v\n", breakdowns[i].CandidateID, err)
		}
	}
}
