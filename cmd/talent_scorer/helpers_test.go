package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/talent-scorer/internal/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// sliceValue is implemented by pflag's slice flag types
type sliceValue interface {
	Replace([]string) error
}

// resetFlags restores every flag to its default so commands can run repeatedly in one process
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(sliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeCommand runs the root command in-process and returns what it wrote to its output
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// writeDefaultJob writes the stock Backend Developer job spec as JSON
func writeDefaultJob(t *testing.T, dir string) string {
	t.Helper()
	data, err := json.Marshal(types.DefaultJobSpec())
	require.NoError(t, err)
	return writeTestFile(t, dir, "job.json", string(data))
}

const testCandidates = `[
  {
    "id": "cand-1",
    "name": "Ayu Lestari",
    "email": "ayu@example.com",
    "education": {"level": "S1", "major": "Computer Science"},
    "experience": {"years": 4, "titles": ["Backend Developer"]},
    "skills": ["Go", "PostgreSQL", "Docker", "REST API"],
    "bootcamps": [],
    "portfolio_urls": [{"platform": "github", "url": "https://github.com/ayu"}],
    "location": "Jakarta"
  },
  {
    "id": "cand-2",
    "name": "Rizky Pratama",
    "email": "rizky@example.com",
    "education": {"level": "SMA", "major": null},
    "experience": {"years": 0, "titles": []},
    "skills": ["Excel"],
    "bootcamps": [],
    "portfolio_urls": [],
    "location": null
  }
]`

func writeCandidates(t *testing.T, dir string) string {
	t.Helper()
	return writeTestFile(t, dir, "candidates.json", testCandidates)
}

func readBreakdowns(t *testing.T, path string) []types.ScoreBreakdown {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var breakdowns []types.ScoreBreakdown
	require.NoError(t, json.Unmarshal(data, &breakdowns))
	return breakdowns
}
