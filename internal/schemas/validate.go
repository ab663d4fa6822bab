// Package schemas validates job specs, candidate profiles and score breakdowns against the
// embedded JSON Schemas.
package schemas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	schemafiles "github.com/jonathan/talent-scorer/schemas"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// ValidationError lists every violation found in one document
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError is a single violation. Field is a dotted path; list documents prefix it with [index].
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "validation failed against %s:\n", ve.Schema)
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// aliases maps short names accepted on the command line to schema files
var aliases = map[string]string{
	"job":               schemafiles.JobSpec,
	"job_spec":          schemafiles.JobSpec,
	"candidate":         schemafiles.CandidateProfile,
	"candidates":        schemafiles.CandidateProfile,
	"candidate_profile": schemafiles.CandidateProfile,
	"breakdown":         schemafiles.ScoreBreakdown,
	"breakdowns":        schemafiles.ScoreBreakdown,
	"score_breakdown":   schemafiles.ScoreBreakdown,
}

// listSchemas are the schemas whose documents may also arrive as a JSON array of objects
var listSchemas = map[string]bool{
	schemafiles.CandidateProfile: true,
	schemafiles.ScoreBreakdown:   true,
}

// Lookup resolves a short name ("job", "candidates", "breakdown", ...) or a schema file name
func Lookup(name string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if file, ok := aliases[key]; ok {
		return file, nil
	}
	for _, file := range schemafiles.All {
		if key == file {
			return file, nil
		}
	}
	return "", &SchemaLoadError{
		Path:    name,
		Message: fmt.Sprintf("unknown schema (want one of %s)", strings.Join(schemafiles.All, ", ")),
	}
}

// ValidateDocument validates raw JSON against an embedded schema. Candidate and breakdown
// documents may be a single object or an array; every element of an array is checked.
func ValidateDocument(schemaName string, document []byte) error {
	schemaBytes, err := schemafiles.FS.ReadFile(schemaName)
	if err != nil {
		return &SchemaLoadError{Path: schemaName, Message: "embedded schema not found", Cause: err}
	}

	trimmed := bytes.TrimSpace(document)
	if !listSchemas[schemaName] || len(trimmed) == 0 || trimmed[0] != '[' {
		return validateBytes(schemaName, schemaBytes, document)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return &ValidationError{Schema: schemaName, Errors: []FieldError{{Field: "(root)", Message: err.Error()}}}
	}

	combined := &ValidationError{Schema: schemaName}
	for i, item := range items {
		err := validateBytes(schemaName, schemaBytes, item)
		if err == nil {
			continue
		}
		itemErr, ok := err.(*ValidationError)
		if !ok {
			return err
		}
		for _, fe := range itemErr.Errors {
			field := fmt.Sprintf("[%d]", i)
			if fe.Field != "(root)" {
				field += "." + fe.Field
			}
			combined.Errors = append(combined.Errors, FieldError{Field: field, Message: fe.Message})
		}
	}

	if len(combined.Errors) > 0 {
		return combined
	}
	return nil
}

// ValidateValue marshals v to JSON and validates it against an embedded schema
func ValidateValue(schemaName string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for validation: %w", err)
	}
	return ValidateDocument(schemaName, data)
}

// ValidateFile validates a JSON or YAML file (by extension) against an embedded schema
func ValidateFile(schemaName, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
		if data, err = json.Marshal(doc); err != nil {
			return fmt.Errorf("failed to convert YAML %s to JSON: %w", path, err)
		}
	}

	return ValidateDocument(schemaName, data)
}

func validateBytes(schemaName string, schema, document []byte) error {
	if !json.Valid(document) {
		return &ValidationError{Schema: schemaName, Errors: []FieldError{{Field: "(root)", Message: "document is not valid JSON"}}}
	}

	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), gojsonschema.NewBytesLoader(document))
	if err != nil {
		return &SchemaLoadError{
			Path:    schemaName,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Schema: schemaName,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
