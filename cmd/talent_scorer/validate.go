package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/talent-scorer/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a job spec, candidate or breakdown file against its JSON Schema",
	Long: `Checks a JSON or YAML file against one of the embedded schemas: job (job_spec),
candidates (candidate_profile) or breakdowns (score_breakdown). Candidate and breakdown files may
hold a single object or a list.`,
	RunE: runValidate,
}

var (
	validateSchema string
	validateFile   string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Schema name: job, candidates or breakdowns (required)")
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Path to JSON/YAML file to validate (required)")

	if err := validateCmd.MarkFlagRequired("schema"); err != nil {
		panic(fmt.Sprintf("failed to mark schema flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	schemaName, err := schemas.Lookup(validateSchema)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	err = schemas.ValidateFile(schemaName, validateFile)

	var validationErr *schemas.ValidationError
	switch {
	case err == nil:
		_, _ = fmt.Fprintf(out, "Validation passed: %s matches %s\n", validateFile, schemaName)
		return nil
	case errors.As(err, &validationErr):
		_, _ = fmt.Fprintf(out, "Validation failed: %s\n", validateFile)
		for _, fe := range validationErr.Errors {
			_, _ = fmt.Fprintf(out, "  - %s: %s\n", fe.Field, fe.Message)
		}
		return fmt.Errorf("%s has %d schema violation(s)", validateFile, len(validationErr.Errors))
	default:
		return err
	}
}
