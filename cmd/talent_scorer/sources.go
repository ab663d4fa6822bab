package main

import (
	"context"
	"fmt"

	"github.com/jonathan/talent-scorer/internal/db"
	"github.com/jonathan/talent-scorer/internal/loader"
	"github.com/jonathan/talent-scorer/internal/ranking"
	"github.com/jonathan/talent-scorer/internal/types"
)

// candidateSource selects stored or file-based inputs for the reporting commands
type candidateSource struct {
	breakdownsPath string
	profilesPath   string
	jobID          string
	status         string
}

func (s candidateSource) parsedStatus() (types.Status, error) {
	if s.status == "" {
		return "", nil
	}
	return types.ParseStatus(s.status)
}

// load returns breakdowns and any profiles available for them. Files take precedence over the store.
func (s candidateSource) load(ctx context.Context, a *app) ([]types.ScoreBreakdown, []types.CandidateProfile, error) {
	status, err := s.parsedStatus()
	if err != nil {
		return nil, nil, err
	}

	if s.breakdownsPath != "" {
		breakdowns, err := loader.LoadBreakdowns(s.breakdownsPath)
		if err != nil {
			return nil, nil, err
		}
		if s.jobID != "" {
			breakdowns = filterByJob(breakdowns, s.jobID)
		}
		if status != "" {
			breakdowns = ranking.FilterByStatus(breakdowns, status)
		}

		var profiles []types.CandidateProfile
		if s.profilesPath != "" {
			profiles, err = loader.LoadCandidates(s.profilesPath)
			if err != nil {
				return nil, nil, err
			}
		}
		return breakdowns, profiles, nil
	}

	store, err := a.openStore(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w (or pass --in)", err)
	}
	defer store.Close()

	records, err := store.ListCandidates(ctx, db.CandidateFilter{JobID: s.jobID, Status: status})
	if err != nil {
		return nil, nil, err
	}
	return db.Breakdowns(records), db.Profiles(records), nil
}

// loadProfiles returns profiles from a file or, when no file is given, from the store
func (s candidateSource) loadProfiles(ctx context.Context, a *app) ([]types.CandidateProfile, error) {
	if s.profilesPath != "" {
		return loader.LoadCandidates(s.profilesPath)
	}

	status, err := s.parsedStatus()
	if err != nil {
		return nil, err
	}

	store, err := a.openStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w (or pass --candidates)", err)
	}
	defer store.Close()

	records, err := store.ListCandidates(ctx, db.CandidateFilter{JobID: s.jobID, Status: status})
	if err != nil {
		return nil, err
	}
	return db.Profiles(records), nil
}

func filterByJob(breakdowns []types.ScoreBreakdown, jobID string) []types.ScoreBreakdown {
	out := make([]types.ScoreBreakdown, 0, len(breakdowns))
	for _, b := range breakdowns {
		if b.JobID == jobID {
			out = append(out, b)
		}
	}
	return out
}
