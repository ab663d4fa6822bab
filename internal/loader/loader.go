// Package loader reads job specs and candidate profiles from JSON or YAML files.
package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/talent-scorer/internal/schemas"
	"github.com/jonathan/talent-scorer/internal/types"
	schemafiles "github.com/jonathan/talent-scorer/schemas"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of an input document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// LoadError represents an error reading or decoding an input file
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// FormatOf picks the format from the file extension. Anything but .yaml/.yml is JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadJobSpec reads and validates a job spec file
func LoadJobSpec(path string) (*types.JobRequirementSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read job spec", Cause: err}
	}

	job, err := ParseJobSpec(data, FormatOf(path))
	if err != nil {
		return nil, &LoadError{Path: path, Message: "invalid job spec", Cause: err}
	}
	return job, nil
}

// ParseJobSpec decodes a job spec and checks it against the job spec schema and struct tags
func ParseJobSpec(data []byte, format Format) (*types.JobRequirementSpec, error) {
	var job types.JobRequirementSpec

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &job); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if err := schemas.ValidateValue(schemafiles.JobSpec, job); err != nil {
			return nil, err
		}
	default:
		// Raw documents are validated before decoding so type mismatches report field paths
		if err := schemas.ValidateDocument(schemafiles.JobSpec, data); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &job); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	}

	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("job spec validation failed: %w", err)
	}
	return &job, nil
}

// LoadCandidates reads one candidate object or a list of candidates from a file.
// Candidates without an id get a generated one.
func LoadCandidates(path string) ([]types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read candidates", Cause: err}
	}

	candidates, err := ParseCandidates(data, FormatOf(path))
	if err != nil {
		return nil, &LoadError{Path: path, Message: "invalid candidates", Cause: err}
	}
	return candidates, nil
}

// ParseCandidates decodes candidates from a single object or an array
func ParseCandidates(data []byte, format Format) ([]types.CandidateProfile, error) {
	var candidates []types.CandidateProfile

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &candidates); err != nil {
			var single types.CandidateProfile
			if errSingle := yaml.Unmarshal(data, &single); errSingle != nil {
				return nil, fmt.Errorf("failed to parse YAML: %w", err)
			}
			candidates = []types.CandidateProfile{single}
		}
	default:
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			if err := json.Unmarshal(trimmed, &candidates); err != nil {
				return nil, fmt.Errorf("failed to parse JSON: %w", err)
			}
		} else {
			var single types.CandidateProfile
			if err := json.Unmarshal(trimmed, &single); err != nil {
				return nil, fmt.Errorf("failed to parse JSON: %w", err)
			}
			candidates = []types.CandidateProfile{single}
		}
	}

	for i := range candidates {
		if strings.TrimSpace(candidates[i].ID) == "" {
			candidates[i].ID = uuid.NewString()
		}
		if err := schemas.ValidateValue(schemafiles.CandidateProfile, candidates[i]); err != nil {
			return nil, fmt.Errorf("candidate %d (%s): %w", i, candidates[i].ID, err)
		}
	}

	if candidates == nil {
		candidates = []types.CandidateProfile{}
	}
	return candidates, nil
}

// FileMeta describes a CV file for the fallback estimator
type FileMeta struct {
	Path      string
	Filename  string
	SizeBytes int64
}

// StatFile reads the name and size of a CV file without opening it
func StatFile(path string) (*FileMeta, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to stat file", Cause: err}
	}
	if info.IsDir() {
		return nil, &LoadError{Path: path, Message: "is a directory"}
	}
	return &FileMeta{
		Path:      path,
		Filename:  info.Name(),
		SizeBytes: info.Size(),
	}, nil
}

// LoadBreakdowns reads a JSON array of score breakdowns, as written by the score and estimate commands
func LoadBreakdowns(path string) ([]types.ScoreBreakdown, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read breakdowns", Cause: err}
	}

	var breakdowns []types.ScoreBreakdown
	if err := json.Unmarshal(data, &breakdowns); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse breakdowns JSON", Cause: err}
	}

	for i := range breakdowns {
		if err := schemas.ValidateValue(schemafiles.ScoreBreakdown, breakdowns[i]); err != nil {
			return nil, &LoadError{
				Path:    path,
				Message: fmt.Sprintf("breakdown %d (%s) failed validation", i, breakdowns[i].CandidateID),
				Cause:   err,
			}
		}
	}

	if breakdowns == nil {
		breakdowns = []types.ScoreBreakdown{}
	}
	return breakdowns, nil
}
