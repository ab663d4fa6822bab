package criteria

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jonathan/talent-scorer/internal/types"
)

const (
	platformShare = 60.0
	volumeShare   = 40.0

	platformPersonalWebsite = "personal_website"
)

// knownPlatforms maps hosts to platform labels; any other host is a personal website
var knownPlatforms = map[string]string{
	"github.com":    "github",
	"gitlab.com":    "gitlab",
	"bitbucket.org": "bitbucket",
	"behance.net":   "behance",
	"dribbble.com":  "dribbble",
	"kaggle.com":    "kaggle",
	"linkedin.com":  "linkedin",
}

type portfolioScorer struct{}

func (portfolioScorer) Criterion() types.Criterion { return types.CriterionPortfolio }

// Score gives up to 60 points for preferred-platform coverage and 40 for volume against min_projects
func (portfolioScorer) Score(candidate *types.CandidateProfile, job *types.JobRequirementSpec) Result {
	req := job.Portfolio

	var links []types.PortfolioLink
	for _, l := range candidate.PortfolioURLs {
		if strings.TrimSpace(l.URL) != "" || strings.TrimSpace(l.Platform) != "" {
			links = append(links, l)
		}
	}

	if len(links) == 0 {
		rationale := "no portfolio links"
		if req.Required {
			rationale = "portfolio required but none provided"
		}
		r := newResult(0, rationale)
		r.Missing = append(r.Missing, req.PreferredPlatforms...)
		return r
	}

	platforms := make(map[string]bool, len(links))
	for _, l := range links {
		platforms[PlatformOf(l)] = true
	}

	var matched, missing []string
	platformTerm := platformShare
	if len(req.PreferredPlatforms) > 0 {
		for _, p := range req.PreferredPlatforms {
			if platforms[platformKey(p)] {
				matched = append(matched, p)
			} else {
				missing = append(missing, p)
			}
		}
		platformTerm = ratio(len(matched), len(req.PreferredPlatforms)) * platformShare
	}

	volumeTerm := volumeShare
	if req.MinProjects > 0 {
		volumeTerm = min(ratio(len(links), req.MinProjects), 1) * volumeShare
	}

	parts := []string{fmt.Sprintf("%d link(s)", len(links))}
	if req.MinProjects > 0 {
		parts[0] = fmt.Sprintf("%d of %d expected link(s)", len(links), req.MinProjects)
	}
	if len(req.PreferredPlatforms) > 0 {
		parts = append(parts, fmt.Sprintf("preferred platforms %d/%d", len(matched), len(req.PreferredPlatforms)))
	}

	r := newResult(platformTerm+volumeTerm, strings.Join(parts, "; "))
	r.Matched = append(r.Matched, matched...)
	r.Missing = append(r.Missing, missing...)
	return r
}

// PlatformOf returns the platform label of a link, inferring it from the URL host when blank
func PlatformOf(link types.PortfolioLink) string {
	if p := platformKey(link.Platform); p != "" {
		return p
	}

	raw := strings.TrimSpace(link.URL)
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return platformPersonalWebsite
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if label, ok := knownPlatforms[host]; ok {
		return label
	}
	return platformPersonalWebsite
}

// platformKey lowercases a platform label and joins words with underscores
func platformKey(p string) string {
	return strings.ToLower(strings.Join(strings.Fields(p), "_"))
}
