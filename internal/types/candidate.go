package types

// CandidateProfile holds the structured attributes extracted from one applicant's resume.
// Nullable attributes are pointers; a nil pointer means the extractor found nothing.
type CandidateProfile struct {
	ID            string              `json:"id" yaml:"id"`
	Filename      string              `json:"filename,omitempty" yaml:"filename"`
	Name          string              `json:"name,omitempty" yaml:"name"`
	Email         string              `json:"email,omitempty" yaml:"email"`
	Phone         string              `json:"phone,omitempty" yaml:"phone"`
	Education     CandidateEducation  `json:"education" yaml:"education"`
	Experience    CandidateExperience `json:"experience" yaml:"experience"`
	Skills        []string            `json:"skills" yaml:"skills"`
	Bootcamps     []string            `json:"bootcamps" yaml:"bootcamps"`
	PortfolioURLs []PortfolioLink     `json:"portfolio_urls" yaml:"portfolio_urls"`
	Location      *string             `json:"location" yaml:"location"`
}

// CandidateEducation is the highest education entry found on the resume
type CandidateEducation struct {
	Level *string `json:"level" yaml:"level"`
	Major *string `json:"major" yaml:"major"`
}

// CandidateExperience summarizes work history
type CandidateExperience struct {
	Years  *float64 `json:"years" yaml:"years"`
	Titles []string `json:"titles" yaml:"titles"`
}

// PortfolioLink is one portfolio entry; Platform may be empty when only the URL was extracted
type PortfolioLink struct {
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
}

// EducationLevel returns the parsed education level. ok is false when the level is absent or unknown.
func (c *CandidateProfile) EducationLevel() (EducationLevel, bool) {
	if c.Education.Level == nil {
		return "", false
	}
	return ParseEducationLevel(*c.Education.Level)
}

// StringPtr returns a pointer to s. Convenient for building profiles in code and tests.
func StringPtr(s string) *string {
	return &s
}

// FloatPtr returns a pointer to f
func FloatPtr(f float64) *float64 {
	return &f
}
