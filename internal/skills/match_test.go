package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Go", "go"},
		{"golang", "go"},
		{"  Python  ", "python"},
		{"REST   API", "rest api"},
		{"RESTful", "rest api"},
		{"JS", "javascript"},
		{"k8s", "kubernetes"},
		{"Postgres", "postgresql"},
		{"Node.js", "node.js"},
		{"NodeJS", "node.js"},
		{"Java", "java"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestMatch(t *testing.T) {
	candidate := []string{"python", "Postgres", " docker "}

	assert.True(t, Match(candidate, "Python"))
	assert.True(t, Match(candidate, "PostgreSQL"))
	assert.True(t, Match(candidate, "Docker"))
	assert.False(t, Match(candidate, "SQL"))
	assert.False(t, Match(candidate, ""))
}

func TestMatch_NoFuzzyMatching(t *testing.T) {
	assert.False(t, Match([]string{"Java"}, "JavaScript"))
	assert.False(t, Match([]string{"JavaScript"}, "Java"))
	assert.False(t, Match([]string{"React Native"}, "React"))
}

func TestMatchAll_PartitionsRequirements(t *testing.T) {
	required := []string{"Python", "SQL", "REST API", "Kubernetes"}
	candidate := []string{"python3", "restful", "Excel"}

	matched, missing := MatchAll(candidate, required)

	assert.Equal(t, []string{"Python", "REST API"}, matched)
	assert.Equal(t, []string{"SQL", "Kubernetes"}, missing)

	// Union covers the requirement list, no overlap
	union := append(append([]string{}, matched...), missing...)
	assert.ElementsMatch(t, required, union)
	for _, m := range matched {
		assert.NotContains(t, missing, m)
	}
}

func TestMatchAll_EmptyInputs(t *testing.T) {
	matched, missing := MatchAll(nil, nil)
	assert.NotNil(t, matched)
	assert.NotNil(t, missing)
	assert.Empty(t, matched)
	assert.Empty(t, missing)

	matched, missing = MatchAll(nil, []string{"Go"})
	assert.Empty(t, matched)
	assert.Equal(t, []string{"Go"}, missing)
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"case-insensitive keeps first", []string{"Python", "python", "SQL"}, []string{"Python", "SQL"}},
		{"aliases collapse", []string{"Go", "golang"}, []string{"Go"}},
		{"blank dropped", []string{"", " ", "Docker"}, []string{"Docker"}},
		{"order preserved", []string{"b", "a", "B"}, []string{"b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Dedupe(tt.input))
		})
	}

	assert.Nil(t, Dedupe(nil))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("Senior Backend Engineer", "engineer"))
	assert.True(t, Contains("Informatika", " INFORMATIKA "))
	assert.False(t, Contains("Designer", "Developer"))
	assert.False(t, Contains("anything", ""))
}
