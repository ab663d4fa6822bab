package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/talent-scorer/internal/types"
)

// -----------------------------------------------------------------------------
// Job Methods
// -----------------------------------------------------------------------------

// CreateJob stores a job spec. A blank spec ID is replaced with a generated UUID.
func (db *DB) CreateJob(ctx context.Context, spec types.JobRequirementSpec) (*Job, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job spec: %w", err)
	}
	if strings.TrimSpace(spec.ID) == "" {
		spec.ID = uuid.NewString()
	}

	requirements, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job spec: %w", err)
	}

	job := Job{ID: spec.ID, Spec: spec}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO jobs (id, title, department, requirements)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		spec.ID, spec.Title, spec.Department, requirements,
	).Scan(&job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return &job, nil
}

// GetJob retrieves a job by ID. Returns nil, nil when the job does not exist.
func (db *DB) GetJob(ctx context.Context, id string) (*Job, error) {
	var job Job
	var requirements []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, requirements, created_at, updated_at FROM jobs WHERE id = $1`,
		id,
	).Scan(&job.ID, &requirements, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if err := json.Unmarshal(requirements, &job.Spec); err != nil {
		return nil, fmt.Errorf("failed to decode job %s requirements: %w", id, err)
	}
	job.Spec.ID = job.ID
	return &job, nil
}

// ListJobs returns all jobs, newest first
func (db *DB) ListJobs(ctx context.Context) ([]Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, requirements, created_at, updated_at FROM jobs ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []Job{}
	for rows.Next() {
		var job Job
		var requirements []byte
		if err := rows.Scan(&job.ID, &requirements, &job.CreatedAt, &job.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		if err := json.Unmarshal(requirements, &job.Spec); err != nil {
			return nil, fmt.Errorf("failed to decode job %s requirements: %w", job.ID, err)
		}
		job.Spec.ID = job.ID
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}
	return jobs, nil
}

// UpdateJob replaces the spec of an existing job
func (db *DB) UpdateJob(ctx context.Context, spec types.JobRequirementSpec) error {
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("invalid job spec: %w", err)
	}

	requirements, err := json.Marshal(spec)
	if err != nil {
		return fmt.Errorf("failed to marshal job spec: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE jobs SET title = $2, department = $3, requirements = $4, updated_at = NOW()
		 WHERE id = $1`,
		spec.ID, spec.Title, spec.Department, requirements,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s: %w", spec.ID, ErrNotFound)
	}
	return nil
}

// DeleteJob removes a job. Stored candidates keep their job_id.
func (db *DB) DeleteJob(ctx context.Context, id string) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s: %w", id, ErrNotFound)
	}
	return nil
}
