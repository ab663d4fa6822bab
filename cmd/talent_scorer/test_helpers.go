package main

import (
	"os"
	"path/filepath"
	"testing"
)

// binaryEnv points the CLI tests at a prebuilt binary outside bin/
const binaryEnv = "TALENT_SCORER_BIN"

// getBinaryPath returns the path to the talent_scorer binary for testing
func getBinaryPath(t *testing.T) string {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := os.Getenv(binaryEnv)
	if binaryPath == "" {
		binaryPath = filepath.Join("..", "..", "bin", "talent_scorer")
	}
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it with 'go build -o bin/talent_scorer ./cmd/talent_scorer' or set %s", binaryPath, binaryEnv)
	}

	return binaryPath
}
