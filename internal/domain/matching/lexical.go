package matching

import (
	"grad-match/internal/domain/candidate"
	"grad-match/internal/domain/posting"

	"go.uber.org/zap"
)

// LexicalScorer scores 0..Max from weighted keyword-set overlaps between the
// candidate's category/profile text and the posting's text fields.
type LexicalScorer struct {
	vocab   Vocabulary
	weights LexicalWeights
	log     *zap.Logger
}

func NewLexicalScorer(vocab Vocabulary, weights LexicalWeights, log *zap.Logger) *LexicalScorer {
	if log == nil {
		log = zap.NewNop()
	}
	return &LexicalScorer{vocab: vocab, weights: weights, log: log}
}

func (s *LexicalScorer) Algorithm() Algorithm {
	return AlgorithmLexical
}

func (s *LexicalScorer) Score(c candidate.Candidate, p posting.Posting) int {
	w := s.weights

	if sameLabel(c.Category, p.RequiredCategory) {
		s.log.Debug("lexical exact category match",
			zap.Int("posting_id", p.ID),
			zap.String("category", c.Category),
		)
		return clampInt(w.ExactMatch, 0, w.Max)
	}

	categoryWords := s.vocab.RelevantWords(c.Category)
	profileWords := s.vocab.RelevantWords(c.Profile)
	if len(categoryWords) == 0 && len(profileWords) == 0 {
		return 0
	}

	requiredWords := s.vocab.RelevantWords(p.RequiredProfile)
	titleWords := s.vocab.RelevantWords(p.Title)

	categoryHits := intersectionSize(categoryWords, requiredWords)
	profileHits := intersectionSize(profileWords, requiredWords)
	titleHits := intersectionSize(profileWords, titleWords)

	descriptionHits := 0
	if w.Description > 0 {
		descriptionHits = intersectionSize(profileWords, s.vocab.RelevantWords(p.Description))
	}

	score := categoryHits*w.Category +
		profileHits*w.Profile +
		titleHits*w.Title +
		descriptionHits*w.Description

	final := clampInt(score, 0, w.Max)
	s.log.Debug("lexical score",
		zap.Int("posting_id", p.ID),
		zap.Int("category_hits", categoryHits),
		zap.Int("profile_hits", profileHits),
		zap.Int("title_hits", titleHits),
		zap.Int("description_hits", descriptionHits),
		zap.Int("raw", score),
		zap.Int("score", final),
	)
	return final
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
