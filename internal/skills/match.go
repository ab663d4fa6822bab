package skills

// Set is a normalized lookup set of skills
type Set map[string]struct{}

// NewSet builds a normalized set from a list of skills as extracted
func NewSet(list []string) Set {
	set := make(Set, len(list))
	for _, s := range list {
		if key := Normalize(s); key != "" {
			set[key] = struct{}{}
		}
	}
	return set
}

// Has reports whether the set holds a skill equal to s after normalization
func (s Set) Has(skill string) bool {
	key := Normalize(skill)
	if key == "" {
		return false
	}
	_, ok := s[key]
	return ok
}

// Match reports whether any candidate skill equals the requirement after normalization
func Match(candidateSkills []string, requirement string) bool {
	return NewSet(candidateSkills).Has(requirement)
}

// MatchAll partitions the requirement list into matched and missing skills.
// Both results keep the requirement order and original spelling, never overlap,
// and together cover every requirement. They are non-nil so they encode as JSON arrays.
func MatchAll(candidateSkills []string, required []string) (matched, missing []string) {
	set := NewSet(candidateSkills)
	matched = make([]string, 0, len(required))
	missing = make([]string, 0, len(required))
	for _, req := range required {
		if set.Has(req) {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}
	return matched, missing
}
