package matching

import (
	"strings"

	"grad-match/internal/domain/candidate"
	"grad-match/internal/domain/posting"

	"go.uber.org/zap"
)

// HierarchicalScorer scores 0..Max by walking the taxonomy for role,
// specialization and skill matches, then applying the skill bonus and the
// posting's priority multiplier.
type HierarchicalScorer struct {
	taxonomy *Taxonomy
	weights  HierarchicalWeights
	log      *zap.Logger
}

func NewHierarchicalScorer(taxonomy *Taxonomy, weights HierarchicalWeights, log *zap.Logger) *HierarchicalScorer {
	if log == nil {
		log = zap.NewNop()
	}
	return &HierarchicalScorer{taxonomy: taxonomy, weights: weights, log: log}
}

func (s *HierarchicalScorer) Algorithm() Algorithm {
	return AlgorithmHierarchical
}

func (s *HierarchicalScorer) Score(c candidate.Candidate, p posting.Posting) int {
	w := s.weights
	total := 0

	if sameLabel(c.Role, p.RequiredRole) {
		pts, _ := s.termScore(p.ID, "role", c.Role, w.Role)
		total += pts
	}
	if sameLabel(c.Specialization, p.RequiredSpecialization) {
		pts, _ := s.termScore(p.ID, "specialization", c.Specialization, w.Specialization)
		total += pts
	}

	matches := 0
	required := candidate.NormalizeSkills(p.RequiredSkills)
	for _, have := range candidate.NormalizeSkills(c.Skills) {
		for _, want := range required {
			if !strings.EqualFold(have, want) {
				continue
			}
			if pts, found := s.termScore(p.ID, "skill", have, w.Skill); found {
				total += pts
				matches++
			}
		}
	}

	bonus := 0
	switch {
	case matches >= w.BroadSkillThreshold:
		bonus = w.BroadSkillBonus
	case matches >= w.GoodSkillThreshold:
		bonus = w.GoodSkillBonus
	}
	total += bonus

	pct := s.priorityPercent(p.Tier())
	adjusted := total * pct / 100

	final := clampInt(adjusted, 0, w.Max)
	s.log.Debug("hierarchical score",
		zap.Int("posting_id", p.ID),
		zap.Int("skill_matches", matches),
		zap.Int("bonus", bonus),
		zap.Int("priority_tier", p.Tier()),
		zap.Int("priority_percent", pct),
		zap.Int("raw", total),
		zap.Int("score", final),
	)
	return final
}

// termScore returns the node weight times factor. Labels missing from the
// taxonomy score 0 and report found=false.
func (s *HierarchicalScorer) termScore(postingID int, term, label string, factor int) (int, bool) {
	idx, ok := s.taxonomy.Find(label)
	if !ok {
		s.log.Debug("taxonomy lookup miss",
			zap.Int("posting_id", postingID),
			zap.String("term", term),
			zap.String("label", label),
		)
		return 0, false
	}
	return s.taxonomy.Weight(idx) * factor, true
}

func (s *HierarchicalScorer) priorityPercent(tier int) int {
	switch tier {
	case posting.PriorityHigh:
		return s.weights.HighPriorityPercent
	case posting.PriorityMedium:
		return s.weights.MediumPriorityPercent
	default:
		return s.weights.LowPriorityPercent
	}
}
