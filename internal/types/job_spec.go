// Package types provides type definitions for structured data used throughout the talent-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Criterion names one of the six scoring criteria
type Criterion string

const (
	CriterionEducation  Criterion = "education"
	CriterionExperience Criterion = "experience"
	CriterionSkills     Criterion = "skills"
	CriterionBootcamp   Criterion = "bootcamp"
	CriterionPortfolio  Criterion = "portfolio"
	CriterionLocation   Criterion = "location"
)

// Criteria lists every criterion in aggregation order. Totals are summed in this order.
var Criteria = []Criterion{
	CriterionEducation,
	CriterionExperience,
	CriterionSkills,
	CriterionBootcamp,
	CriterionPortfolio,
	CriterionLocation,
}

// EducationLevel is an ordinal education level: SMA < D3 < D4 < S1 < S2 < S3
type EducationLevel string

const (
	LevelSMA EducationLevel = "SMA"
	LevelD3  EducationLevel = "D3"
	LevelD4  EducationLevel = "D4"
	LevelS1  EducationLevel = "S1"
	LevelS2  EducationLevel = "S2"
	LevelS3  EducationLevel = "S3"
)

// educationRank maps levels to numeric ranks for comparison
var educationRank = map[EducationLevel]int{
	LevelSMA: 1,
	LevelD3:  2,
	LevelD4:  3,
	LevelS1:  4,
	LevelS2:  5,
	LevelS3:  6,
}

// ParseEducationLevel parses a level case-insensitively. ok is false for unknown levels.
func ParseEducationLevel(s string) (EducationLevel, bool) {
	level := EducationLevel(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := educationRank[level]; !ok {
		return "", false
	}
	return level, true
}

// Rank returns the ordinal rank of the level, or 0 if the level is unknown
func (l EducationLevel) Rank() int {
	return educationRank[l]
}

// JobRequirementSpec describes the weighted requirements of one job opening
type JobRequirementSpec struct {
	ID         string                `json:"id,omitempty" yaml:"id"`
	Title      string                `json:"title" yaml:"title" validate:"required"`
	Department string                `json:"department,omitempty" yaml:"department"`
	Education  EducationRequirement  `json:"education" yaml:"education"`
	Experience ExperienceRequirement `json:"experience" yaml:"experience"`
	Skills     SkillsRequirement     `json:"skills" yaml:"skills"`
	Bootcamp   BootcampRequirement   `json:"bootcamp" yaml:"bootcamp"`
	Portfolio  PortfolioRequirement  `json:"portfolio" yaml:"portfolio"`
	Location   LocationRequirement   `json:"location" yaml:"location"`
}

// EducationRequirement is the education criterion configuration
type EducationRequirement struct {
	MinLevel        EducationLevel `json:"min_level,omitempty" yaml:"min_level" validate:"omitempty,oneof=SMA D3 D4 S1 S2 S3"`
	PreferredMajors []string       `json:"preferred_majors,omitempty" yaml:"preferred_majors"`
	Weight          float64        `json:"weight" yaml:"weight" validate:"gte=0"`
}

// ExperienceRequirement is the experience criterion configuration
type ExperienceRequirement struct {
	MinYears              int      `json:"min_years" yaml:"min_years" validate:"gte=0"`
	RelevantTitleKeywords []string `json:"relevant_title_keywords,omitempty" yaml:"relevant_title_keywords"`
	Weight                float64  `json:"weight" yaml:"weight" validate:"gte=0"`
}

// SkillsRequirement is the skills criterion configuration
type SkillsRequirement struct {
	Required  []string `json:"required,omitempty" yaml:"required"`
	Preferred []string `json:"preferred,omitempty" yaml:"preferred"`
	Weight    float64  `json:"weight" yaml:"weight" validate:"gte=0"`
}

// BootcampRequirement is the bootcamp criterion configuration
type BootcampRequirement struct {
	PreferredProviders []string `json:"preferred_providers,omitempty" yaml:"preferred_providers"`
	Weight             float64  `json:"weight" yaml:"weight" validate:"gte=0"`
}

// PortfolioRequirement is the portfolio criterion configuration
type PortfolioRequirement struct {
	Required           bool     `json:"required" yaml:"required"`
	PreferredPlatforms []string `json:"preferred_platforms,omitempty" yaml:"preferred_platforms"`
	MinProjects        int      `json:"min_projects" yaml:"min_projects" validate:"gte=0"`
	Weight             float64  `json:"weight" yaml:"weight" validate:"gte=0"`
}

// LocationRequirement is the location criterion configuration. Allowed may contain "Remote".
type LocationRequirement struct {
	Allowed []string `json:"allowed,omitempty" yaml:"allowed"`
	Weight  float64  `json:"weight" yaml:"weight" validate:"gte=0"`
}

// RemoteLocation is the wildcard location that accepts candidates without a stated location
const RemoteLocation = "Remote"

// Weight returns the configured (pre-normalization) weight of a criterion
func (j *JobRequirementSpec) Weight(c Criterion) float64 {
	switch c {
	case CriterionEducation:
		return j.Education.Weight
	case CriterionExperience:
		return j.Experience.Weight
	case CriterionSkills:
		return j.Skills.Weight
	case CriterionBootcamp:
		return j.Bootcamp.Weight
	case CriterionPortfolio:
		return j.Portfolio.Weight
	case CriterionLocation:
		return j.Location.Weight
	}
	return 0
}

// WeightSum returns the sum of all criterion weights, summed in Criteria order
func (j *JobRequirementSpec) WeightSum() float64 {
	sum := 0.0
	for _, c := range Criteria {
		sum += j.Weight(c)
	}
	return sum
}

// Validate validates the JobRequirementSpec using the validator.
func (j *JobRequirementSpec) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}

// DefaultJobSpec returns the stock "Backend Developer" opening used to seed new installations
func DefaultJobSpec() JobRequirementSpec {
	return JobRequirementSpec{
		Title:      "Backend Developer",
		Department: "Engineering",
		Education: EducationRequirement{
			MinLevel:        LevelS1,
			PreferredMajors: []string{"Informatika", "Teknik Komputer", "Sistem Informasi"},
			Weight:          15,
		},
		Experience: ExperienceRequirement{
			MinYears:              3,
			RelevantTitleKeywords: []string{"Developer", "Engineer", "Programmer"},
			Weight:                25,
		},
		Skills: SkillsRequirement{
			Required:  []string{"Python", "SQL", "REST API"},
			Preferred: []string{"Docker", "AWS", "PostgreSQL"},
			Weight:    40,
		},
		Bootcamp: BootcampRequirement{
			PreferredProviders: []string{"Hacktiv8", "Binar Academy", "Dicoding", "Purwadhika", "Sanbercode"},
			Weight:             10,
		},
		Portfolio: PortfolioRequirement{
			Required:           true,
			PreferredPlatforms: []string{"github", "gitlab", "personal_website"},
			MinProjects:        2,
			Weight:             15,
		},
		Location: LocationRequirement{
			Allowed: []string{"Jakarta", "Bandung", RemoteLocation},
			Weight:  5,
		},
	}
}
