package db

import (
	"fmt"
	"strings"
)

const candidateColumns = `candidate_id, job_id, name, email, filename, total_score, status, mode,
		        profile, breakdown, computed_at, created_at, updated_at`

// buildCandidateQuery renders the SELECT for a filter with positional arguments
func buildCandidateQuery(f CandidateFilter) (string, []any) {
	var (
		where []string
		args  []any
	)

	add := func(clause string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if f.JobID != "" {
		add("job_id = $%d", f.JobID)
	}
	if f.Status != "" {
		add("status = $%d", string(f.Status))
	}
	if f.MinScore != nil {
		add("total_score >= $%d", *f.MinScore)
	}
	if f.MaxScore != nil {
		add("total_score <= $%d", *f.MaxScore)
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d)", n, n))
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(candidateColumns)
	sb.WriteString("\n\t\t FROM candidates")
	if len(where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}
	sb.WriteString(" ORDER BY total_score DESC, computed_at ASC, candidate_id ASC")

	if f.Limit > 0 {
		args = append(args, f.Limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		sb.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))
	}

	return sb.String(), args
}
