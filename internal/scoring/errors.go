package scoring

import "fmt"

// ConfigurationError reports an invalid job spec, such as a negative or all-zero weight vector.
// It is returned to the caller and never defaulted.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// CandidateError reports a failure while scoring one candidate
type CandidateError struct {
	CandidateID string
	Message     string
	Cause       error
}

func (e *CandidateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scoring candidate %s failed: %s: %v", e.CandidateID, e.Message, e.Cause)
	}
	return fmt.Sprintf("scoring candidate %s failed: %s", e.CandidateID, e.Message)
}

func (e *CandidateError) Unwrap() error {
	return e.Cause
}
