// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/talent-scorer/internal/ranking"
	"github.com/jonathan/talent-scorer/internal/scoring"
	"github.com/jonathan/talent-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to width runes, marking the cut with "..."
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// joinLimited joins up to limit items, summarizing the rest
func joinLimited(items []string, limit int) string {
	if len(items) <= limit {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(items[:limit], ", "), len(items)-limit)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PrintBreakdown outputs a per-criterion summary of one score breakdown.
func (p *Printer) PrintBreakdown(b *types.ScoreBreakdown) {
	if b == nil {
		return
	}

	var sb strings.Builder

	name := b.CandidateName
	if name == "" {
		name = b.CandidateID
	}
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", name))
	if b.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Job:       %s\n", b.JobTitle))
	}
	sb.WriteString(fmt.Sprintf("Total:     %.2f  [%s]\n", b.TotalScore, b.Status))
	if b.Estimated() {
		sb.WriteString("Mode:      estimated (no criteria scored)\n")
	}

	if len(b.Criteria) > 0 {
		sb.WriteString("\n")
		for _, c := range types.Criteria {
			cs, ok := b.Criteria[c]
			if !ok {
				continue
			}
			marker := " "
			if cs.Incomplete {
				marker = "?"
			}
			sb.WriteString(fmt.Sprintf("%s %-10s %6.2f x %5.2f%% = %6.2f\n",
				marker, c, cs.RawScore, cs.Weight, cs.WeightedContribution))
			if cs.Rationale != "" {
				sb.WriteString(fmt.Sprintf("    %s\n", cs.Rationale))
			}
			if len(cs.Missing) > 0 {
				sb.WriteString(fmt.Sprintf("    missing: %s\n", joinLimited(cs.Missing, 3)))
			}
		}
	}

	if len(b.Notices) > 0 {
		sb.WriteString("\n")
		for _, n := range b.Notices {
			sb.WriteString(fmt.Sprintf("⚠ %s\n", n.Message))
		}
	}

	p.printBox("SCORE BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the top ranked candidates.
func (p *Printer) PrintRanking(breakdowns []types.ScoreBreakdown) {
	if len(breakdowns) == 0 {
		return
	}

	ranked := ranking.Rank(breakdowns)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		b := ranked[i]
		name := b.CandidateName
		if name == "" {
			name = b.CandidateID
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    Score: %.2f (%s)", b.TotalScore, b.Status))
		if b.Estimated() {
			sb.WriteString(" estimated")
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(ranked)-maxItemsToShow))
	}

	p.printBox("TOP RANKED CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStats outputs aggregate counts and the score distribution.
func (p *Printer) PrintStats(stats types.Stats, th types.Thresholds) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Candidates:    %d\n", stats.Total))
	sb.WriteString(fmt.Sprintf("Average score: %.2f\n", stats.AverageScore))
	sb.WriteString(fmt.Sprintf("Estimated:     %d\n", stats.Estimated))
	sb.WriteString("\nBy status:\n")
	for _, s := range types.Statuses {
		sb.WriteString(fmt.Sprintf("  • %-12s %d\n", s, stats.ByStatus[s]))
	}
	sb.WriteString("\nDistribution:\n")
	for _, band := range ranking.Bands(th) {
		sb.WriteString(fmt.Sprintf("  • %-12s %d\n", band, stats.Distribution[band]))
	}

	p.printBox("CANDIDATE STATISTICS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProfileStats outputs skill, education and location analytics.
func (p *Printer) PrintProfileStats(stats ranking.ProfileStats) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Profiles analyzed: %d\n", stats.Candidates))

	if len(stats.TopSkills) > 0 {
		sb.WriteString("\nTop skills:\n")
		for _, s := range stats.TopSkills {
			sb.WriteString(fmt.Sprintf("  • %-20s %d\n", s.Skill, s.Count))
		}
	}

	if len(stats.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		for _, key := range sortedKeys(stats.Education) {
			sb.WriteString(fmt.Sprintf("  • %-20s %d\n", key, stats.Education[key]))
		}
	}

	if len(stats.Locations) > 0 {
		sb.WriteString("\nLocations:\n")
		for _, key := range sortedKeys(stats.Locations) {
			sb.WriteString(fmt.Sprintf("  • %-20s %d\n", key, stats.Locations[key]))
		}
	}

	p.printBox("PROFILE ANALYTICS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchFailures outputs the candidates a batch could not score.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBatchFailures(results []scoring.BatchResult) {
	var failed []scoring.BatchResult
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}

	if len(failed) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL CANDIDATES SCORED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Failed %d of %d candidates:\n\n", len(failed), len(results)))
	for i, r := range failed {
		sb.WriteString(fmt.Sprintf("⚠ #%d %s\n", r.Index, r.CandidateID))
		sb.WriteString(fmt.Sprintf("  %s\n", r.Error))
		if i < len(failed)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("UNSCORED CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}
