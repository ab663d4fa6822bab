// Package skills provides skill-name normalization and exact matching of candidate skills against job requirements.
package skills

import (
	"strings"
)

// skillAliases maps common skill name variants to canonical lowercase names.
// Lookups happen after trimming, collapsing whitespace and lowercasing.
var skillAliases = map[string]string{
	"golang":      "go",
	"go lang":     "go",
	"js":          "javascript",
	"ecmascript":  "javascript",
	"es6":         "javascript",
	"ts":          "typescript",
	"py":          "python",
	"python3":     "python",
	"postgres":    "postgresql",
	"pgsql":       "postgresql",
	"k8s":         "kubernetes",
	"ml":          "machine learning",
	"restful":     "rest api",
	"restful api": "rest api",
	"rest":        "rest api",
	"reactjs":     "react",
	"react.js":    "react",
	"vuejs":       "vue",
	"vue.js":      "vue",
	"angularjs":   "angular",
	"node":        "node.js",
	"nodejs":      "node.js",
	"nextjs":      "next.js",
	"next":        "next.js",
}

// Normalize returns the canonical comparison key for a skill name.
// It trims, collapses inner whitespace, lowercases and resolves aliases.
// Aliases are whole-string canonicalizations: "Java" never becomes "javascript".
func Normalize(skill string) string {
	key := strings.ToLower(strings.Join(strings.Fields(skill), " "))
	if key == "" {
		return ""
	}
	if canonical, ok := skillAliases[key]; ok {
		return canonical
	}
	return key
}

// Dedupe removes duplicates that normalize to the same key, keeping the first occurrence
// and its original spelling. Blank entries are dropped.
func Dedupe(list []string) []string {
	if len(list) == 0 {
		return list
	}

	result := make([]string, 0, len(list))
	seen := make(map[string]bool, len(list))
	for _, item := range list {
		key := Normalize(item)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, item)
	}
	return result
}

// Contains reports whether needle occurs in haystack, ignoring case and surrounding whitespace
func Contains(haystack, needle string) bool {
	n := strings.ToLower(strings.TrimSpace(needle))
	if n == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), n)
}

// EqualFold reports whether a and b are equal after trimming and ignoring case
func EqualFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
