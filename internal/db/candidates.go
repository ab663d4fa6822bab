package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/talent-scorer/internal/types"
)

// -----------------------------------------------------------------------------
// Candidate Methods
// -----------------------------------------------------------------------------

// SaveBreakdown upserts a candidate by ID. Re-scoring replaces the stored breakdown and profile.
// profile may be nil for estimated breakdowns.
func (db *DB) SaveBreakdown(ctx context.Context, profile *types.CandidateProfile, b *types.ScoreBreakdown) error {
	if b == nil {
		return fmt.Errorf("breakdown is nil")
	}
	if b.CandidateID == "" {
		return fmt.Errorf("breakdown has no candidate id")
	}

	breakdownJSON, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal breakdown: %w", err)
	}

	var profileJSON []byte
	if profile != nil {
		profileJSON, err = json.Marshal(profile)
		if err != nil {
			return fmt.Errorf("failed to marshal profile: %w", err)
		}
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO candidates (candidate_id, job_id, name, email, filename, total_score,
		                         status, mode, profile, breakdown, computed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (candidate_id) DO UPDATE SET
		     job_id = $2, name = $3, email = $4, filename = $5, total_score = $6,
		     status = $7, mode = $8, profile = $9, breakdown = $10, computed_at = $11,
		     updated_at = NOW()`,
		b.CandidateID, b.JobID, b.CandidateName, b.Email, b.Filename, b.TotalScore,
		string(b.Status), string(b.Mode), profileJSON, breakdownJSON, b.ComputedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save candidate %s: %w", b.CandidateID, err)
	}
	return nil
}

// GetCandidate retrieves a candidate by ID. Returns nil, nil when the candidate does not exist.
func (db *DB) GetCandidate(ctx context.Context, candidateID string) (*CandidateRecord, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE candidate_id = $1`,
		candidateID,
	)

	rec, err := scanCandidate(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return rec, nil
}

// ListCandidates returns candidates matching the filter, highest score first
func (db *DB) ListCandidates(ctx context.Context, filter CandidateFilter) ([]CandidateRecord, error) {
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("invalid candidate filter: %w", err)
	}

	query, args := buildCandidateQuery(filter)
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	records := []CandidateRecord{}
	for rows.Next() {
		rec, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidates: %w", err)
	}
	return records, nil
}

// ListBreakdowns returns just the breakdowns for a filter, in the same order as ListCandidates
func (db *DB) ListBreakdowns(ctx context.Context, filter CandidateFilter) ([]types.ScoreBreakdown, error) {
	records, err := db.ListCandidates(ctx, filter)
	if err != nil {
		return nil, err
	}
	return Breakdowns(records), nil
}

// UpdateStatus applies a reviewer status override to the column and the stored breakdown
func (db *DB) UpdateStatus(ctx context.Context, candidateID string, status types.Status) error {
	parsed, err := types.ParseStatus(string(status))
	if err != nil {
		return err
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE candidates
		 SET status = $2, breakdown = jsonb_set(breakdown, '{status}', to_jsonb($2::text)), updated_at = NOW()
		 WHERE candidate_id = $1`,
		candidateID, string(parsed),
	)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("candidate %s: %w", candidateID, ErrNotFound)
	}
	return nil
}

// DeleteCandidate removes a candidate and its breakdown
func (db *DB) DeleteCandidate(ctx context.Context, candidateID string) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM candidates WHERE candidate_id = $1`, candidateID)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("candidate %s: %w", candidateID, ErrNotFound)
	}
	return nil
}

// Breakdowns extracts the breakdowns from records, keeping order
func Breakdowns(records []CandidateRecord) []types.ScoreBreakdown {
	out := make([]types.ScoreBreakdown, len(records))
	for i, rec := range records {
		out[i] = rec.Breakdown
	}
	return out
}

// Profiles extracts the stored profiles, skipping records without one
func Profiles(records []CandidateRecord) []types.CandidateProfile {
	out := make([]types.CandidateProfile, 0, len(records))
	for _, rec := range records {
		if rec.Profile != nil {
			out = append(out, *rec.Profile)
		}
	}
	return out
}

func scanCandidate(row pgx.Row) (*CandidateRecord, error) {
	var rec CandidateRecord
	var status, mode string
	var profileJSON, breakdownJSON []byte

	if err := row.Scan(&rec.CandidateID, &rec.JobID, &rec.Name, &rec.Email, &rec.Filename,
		&rec.TotalScore, &status, &mode, &profileJSON, &breakdownJSON,
		&rec.ComputedAt, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	rec.Status = types.Status(status)
	rec.Mode = types.ScoreMode(mode)

	if err := json.Unmarshal(breakdownJSON, &rec.Breakdown); err != nil {
		return nil, fmt.Errorf("failed to decode breakdown for %s: %w", rec.CandidateID, err)
	}
	if profileJSON != nil {
		var profile types.CandidateProfile
		if err := json.Unmarshal(profileJSON, &profile); err != nil {
			return nil, fmt.Errorf("failed to decode profile for %s: %w", rec.CandidateID, err)
		}
		rec.Profile = &profile
	}
	return &rec, nil
}
