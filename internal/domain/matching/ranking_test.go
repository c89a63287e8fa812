package matching

import (
	"sort"
	"testing"

	"grad-match/internal/domain/candidate"
	"grad-match/internal/domain/posting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedScorer map[int]int

func (fixedScorer) Algorithm() Algorithm { return "fixed" }

func (f fixedScorer) Score(_ candidate.Candidate, p posting.Posting) int { return f[p.ID] }

func postingsWithIDs(ids ...int) []posting.Posting {
	out := make([]posting.Posting, 0, len(ids))
	for _, id := range ids {
		out = append(out, posting.Posting{ID: id, Title: "job"})
	}
	return out
}

func ids(items []posting.Scored) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestAssembler_FiltersSortsAndKeepsTieOrder(t *testing.T) {
	scorer := fixedScorer{1: 40, 2: 0, 3: 90, 4: 40, 5: 90, 6: 10, 7: 40}
	a := NewAssembler(StackStager{}, nil)

	got := a.Rank(candidate.Candidate{}, scorer, postingsWithIDs(1, 2, 3, 4, 5, 6, 7))

	assert.Equal(t, []int{3, 5, 1, 4, 7, 6}, ids(got))
	for _, it := range got {
		assert.Equal(t, "fixed", it.Algorithm)
		assert.Equal(t, scorer[it.ID], it.AffinityScore)
	}
}

func TestAssembler_StagingDisciplineDoesNotChangeOrder(t *testing.T) {
	scorer := fixedScorer{}
	postings := make([]posting.Posting, 0, 40)
	for i := 1; i <= 40; i++ {
		scorer[i] = (i * 37) % 7 * 10
		postings = append(postings, posting.Posting{ID: i})
	}

	plain := make([]posting.Scored, 0, len(postings))
	for _, p := range postings {
		if s := scorer[p.ID]; s > 0 {
			plain = append(plain, posting.Scored{Posting: p, AffinityScore: s, Algorithm: "fixed"})
		}
	}
	sort.SliceStable(plain, func(i, j int) bool { return plain[i].AffinityScore > plain[j].AffinityScore })

	fromStack := NewAssembler(StackStager{}, nil).Rank(candidate.Candidate{}, scorer, postings)
	fromQueue := NewAssembler(QueueStager{}, nil).Rank(candidate.Candidate{}, scorer, postings)

	assert.Equal(t, plain, fromStack)
	assert.Equal(t, plain, fromQueue)
}

func TestAssembler_IsIdempotentAndDoesNotMutateInput(t *testing.T) {
	scorer := fixedScorer{1: 5, 2: 50, 3: 5}
	postings := postingsWithIDs(1, 2, 3)
	before := append([]posting.Posting(nil), postings...)
	a := NewAssembler(nil, nil)

	first := a.Rank(candidate.Candidate{}, scorer, postings)
	second := a.Rank(candidate.Candidate{}, scorer, postings)

	assert.Equal(t, first, second)
	assert.Equal(t, before, postings)
}

func TestAssembler_EmptyResult(t *testing.T) {
	a := NewAssembler(QueueStager{}, nil)
	got := a.Rank(candidate.Candidate{}, fixedScorer{}, postingsWithIDs(1, 2))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEngine_RanksWithSelectedAlgorithm(t *testing.T) {
	e := NewEngine(EngineConfig{Weights: DefaultWeights(), Vocabulary: DefaultVocabulary()})

	c := candidate.Candidate{
		Category:       "Software",
		Profile:        "Desarrolladora frontend especializada en React",
		Role:           "Development Team",
		Specialization: "Frontend",
		Skills:         []string{"React", "JavaScript", "HTML", "CSS"},
	}
	postings := []posting.Posting{
		{ID: 1, Title: "QA Tester", RequiredCategory: "Software", RequiredRole: "QA Tester", RequiredSkills: []string{"Jira"}, PriorityTier: 1},
		{ID: 2, Title: "Frontend React", RequiredCategory: "Software", RequiredRole: "Development Team", RequiredSpecialization: "Frontend", RequiredSkills: []string{"React", "CSS"}, PriorityTier: 3},
		{ID: 3, Title: "Frontend Angular", RequiredCategory: "Software", RequiredRole: "Development Team", RequiredSpecialization: "Frontend", RequiredSkills: []string{"Angular", "HTML", "CSS"}, PriorityTier: 2},
	}

	got, err := e.Rank(c, AlgorithmHierarchical, postings)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, ids(got))
	for _, it := range got {
		assert.Equal(t, string(AlgorithmHierarchical), it.Algorithm)
	}

	got, err = e.Rank(c, AlgorithmLexical, postings)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids(got))
	for _, it := range got {
		assert.Equal(t, 100, it.AffinityScore)
	}

	_, err = e.Rank(c, "semantic", postings)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestParseAlgorithm(t *testing.T) {
	alg, err := ParseAlgorithm(" Lexical ")
	require.NoError(t, err)
	assert.Equal(t, AlgorithmLexical, alg)

	alg, err = ParseAlgorithm("hierarchical")
	require.NoError(t, err)
	assert.Equal(t, AlgorithmHierarchical, alg)

	_, err = ParseAlgorithm("tree")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}
