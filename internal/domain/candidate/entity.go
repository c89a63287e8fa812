package candidate

import "strings"

// Candidate is a graduate profile matched against the posting catalog.
type Candidate struct {
	ID             int
	NationalID     string
	Name           string
	Category       string
	Profile        string
	Role           string
	Specialization string
	Skills         []string

	RecordHash string
}

// NormalizeSkills trims labels and drops empty and case-insensitive duplicates,
// keeping the first spelling seen.
func NormalizeSkills(skills []string) []string {
	if len(skills) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		k := strings.ToLower(s)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out
}
