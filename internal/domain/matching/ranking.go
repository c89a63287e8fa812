package matching

import (
	"sort"

	"grad-match/internal/domain/candidate"
	"grad-match/internal/domain/posting"

	"go.uber.org/zap"
)

// Assembler scores postings for one candidate, drops the ones without
// affinity and returns the rest by descending score. Equal scores keep their
// input order.
type Assembler struct {
	stager Stager
	log    *zap.Logger
}

func NewAssembler(stager Stager, log *zap.Logger) *Assembler {
	if stager == nil {
		stager = StackStager{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Assembler{stager: stager, log: log}
}

func (a *Assembler) Rank(c candidate.Candidate, scorer Scorer, postings []posting.Posting) []posting.Scored {
	out := make([]posting.Scored, 0, len(postings))
	for _, p := range postings {
		score := scorer.Score(c, p)
		if score <= 0 {
			continue
		}
		out = append(out, posting.Scored{
			Posting:       p,
			AffinityScore: score,
			Algorithm:     string(scorer.Algorithm()),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AffinityScore > out[j].AffinityScore
	})

	ranked := a.stager.Stage(out)
	a.log.Info("ranking assembled",
		zap.Int("candidate_id", c.ID),
		zap.String("algorithm", string(scorer.Algorithm())),
		zap.String("staging", a.stager.Name()),
		zap.Int("postings", len(postings)),
		zap.Int("ranked", len(ranked)),
	)
	return ranked
}
