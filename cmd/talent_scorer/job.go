package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/talent-scorer/internal/db"
	"github.com/jonathan/talent-scorer/internal/loader"
	"github.com/jonathan/talent-scorer/internal/scoring"
	"github.com/jonathan/talent-scorer/internal/types"
	"github.com/spf13/cobra"
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Manage stored job openings",
}

var jobAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Store a job spec",
	Long:  "Stores a job spec from a JSON/YAML file, or the stock Backend Developer spec with --default. The weights are checked before the job is stored.",
	RunE:  runJobAdd,
}

var jobListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored jobs",
	RunE:  runJobList,
}

var jobShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a stored job spec",
	RunE:  runJobShow,
}

var jobDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a stored job",
	RunE:  runJobDelete,
}

var (
	jobAddFile    string
	jobAddDefault bool
	jobIDFlag     string
)

func init() {
	jobAddCmd.Flags().StringVarP(&jobAddFile, "file", "f", "", "Path to JobRequirementSpec JSON/YAML file")
	jobAddCmd.Flags().BoolVar(&jobAddDefault, "default", false, "Store the stock Backend Developer job spec")

	jobShowCmd.Flags().StringVar(&jobIDFlag, "id", "", "Job ID (required)")
	jobDeleteCmd.Flags().StringVar(&jobIDFlag, "id", "", "Job ID (required)")

	if err := jobShowCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}
	if err := jobDeleteCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}

	jobCmd.AddCommand(jobAddCmd, jobListCmd, jobShowCmd, jobDeleteCmd)
	rootCmd.AddCommand(jobCmd)
}

func runJobAdd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var spec types.JobRequirementSpec
	switch {
	case jobAddFile != "" && jobAddDefault:
		return fmt.Errorf("--file and --default are mutually exclusive; provide only one")
	case jobAddFile != "":
		loaded, err := loader.LoadJobSpec(jobAddFile)
		if err != nil {
			return fmt.Errorf("failed to load job: %w", err)
		}
		spec = *loaded
	case jobAddDefault:
		spec = types.DefaultJobSpec()
	default:
		return fmt.Errorf("either --file or --default must be provided")
	}

	// Reject weights the engine would refuse before they reach the store
	if err := scoring.ValidateJob(&spec); err != nil {
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

	job, err := store.CreateJob(ctx, spec)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(a.out, "Successfully stored job %q with id %s\n", job.Spec.Title, job.ID)
	return nil
}

func runJobList(cmd *cobra.Command, _ []string) error {
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

	jobs, err := store.ListJobs(ctx)
	if err != nil {
		return err
	}

	if !a.cfg.Verbose {
		return a.writeJSON("", jobs)
	}

	for _, j := range jobs {
		_, _ = fmt.Fprintf(a.out, "%s  %-30s  weights=%.0f  %s\n",
			j.ID, j.Spec.Title, j.Spec.WeightSum(), j.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func runJobShow(cmd *cobra.Command, _ []string) error {
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

	job, err := store.GetJob(ctx, jobIDFlag)
	if err != nil {
		return err
	}
	if job == nil {
		return fmt.Errorf("job %s not found", jobIDFlag)
	}
	return a.writeJSON("", job)
}

func runJobDelete(cmd *cobra.Command, _ []string) error {
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

	if err := store.DeleteJob(ctx, jobIDFlag); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("job %s not found", jobIDFlag)
		}
		return err
	}

	_, _ = fmt.Fprintf(a.out, "Successfully deleted job %s\n", jobIDFlag)
	return nil
}
