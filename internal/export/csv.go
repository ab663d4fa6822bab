// Package export renders ranked score breakdowns as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jonathan/talent-scorer/internal/ranking"
	"github.com/jonathan/talent-scorer/internal/types"
)

// Header returns the CSV column names: fixed columns followed by one per criterion
func Header() []string {
	header := []string{"Rank", "Name", "Email", "Phone", "Location", "Total Score", "Status", "Mode"}
	for _, c := range types.Criteria {
		header = append(header, string(c))
	}
	return header
}

// WriteCSV writes breakdowns in rank order. profiles is keyed by candidate ID and may be nil;
// contact columns fall back to the breakdown when no profile is present.
func WriteCSV(w io.Writer, breakdowns []types.ScoreBreakdown, profiles map[string]*types.CandidateProfile) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, b := range ranking.Rank(breakdowns) {
		if err := cw.Write(record(i+1, b, profiles[b.CandidateID])); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", b.CandidateID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// WriteCSVFile writes the CSV to path, creating or truncating it
func WriteCSVFile(path string, breakdowns []types.ScoreBreakdown, profiles map[string]*types.CandidateProfile) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := WriteCSV(f, breakdowns, profiles); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// ProfileIndex keys profiles by candidate ID
func ProfileIndex(profiles []types.CandidateProfile) map[string]*types.CandidateProfile {
	index := make(map[string]*types.CandidateProfile, len(profiles))
	for i := range profiles {
		index[profiles[i].ID] = &profiles[i]
	}
	return index
}

func record(rank int, b types.ScoreBreakdown, profile *types.CandidateProfile) []string {
	name, email := b.CandidateName, b.Email
	var phone, location string
	if profile != nil {
		if profile.Name != "" {
			name = profile.Name
		}
		if profile.Email != "" {
			email = profile.Email
		}
		phone = profile.Phone
		if profile.Location != nil {
			location = *profile.Location
		}
	}

	row := []string{
		strconv.Itoa(rank),
		name,
		email,
		phone,
		location,
		formatScore(b.TotalScore),
		string(b.Status),
		string(b.Mode),
	}

	for _, c := range types.Criteria {
		// Estimated breakdowns carry no per-criterion scores
		cs, ok := b.Criteria[c]
		if !ok {
			row = append(row, "")
			continue
		}
		row = append(row, formatScore(cs.RawScore))
	}
	return row
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
