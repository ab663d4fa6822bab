// Package schemas embeds the JSON Schemas for job specs, candidate profiles and score breakdowns.
package schemas

import "embed"

// Schema file names
const (
	JobSpec          = "job_spec.schema.json"
	CandidateProfile = "candidate_profile.schema.json"
	ScoreBreakdown   = "score_breakdown.schema.json"
)

// All lists every embedded schema file
var All = []string{JobSpec, CandidateProfile, ScoreBreakdown}

// FS holds the schema files
//
//go:embed *.schema.json
var FS embed.FS
