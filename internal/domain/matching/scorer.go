package matching

import (
	"errors"
	"fmt"
	"strings"

	"grad-match/internal/domain/candidate"
	"grad-match/internal/domain/posting"
)

type Algorithm string

const (
	AlgorithmLexical      Algorithm = "lexical"
	AlgorithmHierarchical Algorithm = "hierarchical"
)

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(s))) {
	case AlgorithmLexical:
		return AlgorithmLexical, nil
	case AlgorithmHierarchical:
		return AlgorithmHierarchical, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Scorer estimates the affinity between one candidate and one posting.
// Implementations are pure and safe for concurrent use.
type Scorer interface {
	Algorithm() Algorithm
	Score(c candidate.Candidate, p posting.Posting) int
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func sameLabel(a, b string) bool {
	a = normalizeLabel(a)
	return a != "" && a == normalizeLabel(b)
}
