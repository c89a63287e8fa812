package matching

import (
	"testing"

	"grad-match/internal/domain/candidate"
	"grad-match/internal/domain/posting"

	"github.com/stretchr/testify/assert"
)

func newHierarchical() *HierarchicalScorer {
	return NewHierarchicalScorer(DefaultTaxonomy(), DefaultWeights().Hierarchical, nil)
}

func TestHierarchicalScore_FullMatchIsClamped(t *testing.T) {
	s := newHierarchical()
	c := candidate.Candidate{
		Role:           "Development Team",
		Specialization: "Fullstack",
		Skills:         []string{"React", "Node.js", "PostgreSQL"},
	}
	p := posting.Posting{
		RequiredRole:           "Development Team",
		RequiredSpecialization: "Fullstack",
		RequiredSkills:         []string{"React", "Node.js", "PostgreSQL"},
		PriorityTier:           posting.PriorityHigh,
	}

	// (500 + 270 + 3*105 + 100) * 1.2 = 1422
	assert.Equal(t, 1000, s.Score(c, p))
}

func TestHierarchicalScore_PriorityTiers(t *testing.T) {
	s := newHierarchical()
	c := candidate.Candidate{
		Role:           "qa tester",
		Specialization: "AUTOMATIZACIÓN",
		Skills:         []string{"Selenium", "Jira"},
	}
	p := posting.Posting{
		RequiredRole:           "QA Tester",
		RequiredSpecialization: "Automatización",
		RequiredSkills:         []string{"Selenium", "Cypress", "Jira"},
	}

	// 400 + 210 + 2*90 + 50 = 840; tier 1 gives 1008 before clamping
	cases := map[int]int{
		posting.PriorityHigh:   1000,
		posting.PriorityMedium: 924,
		posting.PriorityLow:    840,
		0:                      840,
	}
	for tier, want := range cases {
		p.PriorityTier = tier
		assert.Equal(t, want, s.Score(c, p), "tier %d", tier)
	}
}

func TestHierarchicalScore_SingleSkillNoBonus(t *testing.T) {
	s := newHierarchical()
	c := candidate.Candidate{Skills: []string{"React"}}
	p := posting.Posting{RequiredSkills: []string{"react", "React"}, PriorityTier: posting.PriorityLow}

	assert.Equal(t, 105, s.Score(c, p))
}

func TestHierarchicalScore_TruncatesMultiplier(t *testing.T) {
	s := newHierarchical()
	c := candidate.Candidate{Skills: []string{"Jira"}}
	p := posting.Posting{RequiredSkills: []string{"Jira"}, PriorityTier: posting.PriorityMedium}

	// 90 * 1.1 = 99
	assert.Equal(t, 99, s.Score(c, p))

	c.Skills = []string{"Figma"}
	p.RequiredSkills = []string{"Figma"}
	p.PriorityTier = posting.PriorityHigh
	// 90 * 1.2 = 108
	assert.Equal(t, 108, s.Score(c, p))
}

func TestHierarchicalScore_LookupMissesScoreZero(t *testing.T) {
	s := newHierarchical()
	c := candidate.Candidate{Role: "Data Engineer", Specialization: "Streaming", Skills: []string{"Go", "Rust", "Kafka"}}
	p := posting.Posting{
		RequiredRole:           "data engineer",
		RequiredSpecialization: "streaming",
		RequiredSkills:         []string{"go", "rust", "kafka"},
		PriorityTier:           posting.PriorityHigh,
	}

	assert.Equal(t, 0, s.Score(c, p))
}

func TestHierarchicalScore_MissingAttributes(t *testing.T) {
	s := newHierarchical()
	assert.Equal(t, 0, s.Score(candidate.Candidate{}, posting.Posting{}))
	assert.Equal(t, 0, s.Score(
		candidate.Candidate{Role: "QA Tester"},
		posting.Posting{RequiredSkills: []string{"Jira"}},
	))
}

func TestHierarchicalScore_MonotonicInSkills(t *testing.T) {
	s := newHierarchical()
	p := posting.Posting{
		RequiredRole:   "Development Team",
		RequiredSkills: []string{"HTML", "CSS", "JavaScript", "React", "Angular"},
		PriorityTier:   posting.PriorityMedium,
	}
	c := candidate.Candidate{Role: "Development Team"}

	prev := s.Score(c, p)
	for _, skill := range []string{"Cobol", "HTML", "CSS", "Figma", "JavaScript", "React", "Angular"} {
		c.Skills = append(c.Skills, skill)
		cur := s.Score(c, p)
		assert.GreaterOrEqual(t, cur, prev, "adding %s", skill)
		prev = cur
	}
	assert.Equal(t, 1000, prev)
}

func TestHierarchicalScore_Range(t *testing.T) {
	s := newHierarchical()
	roles := []string{"", "Development Team", "QA Tester", "UX/UI Designer", "Unknown"}
	specs := []string{"", "Fullstack", "Backend", "Prototipado"}
	skills := [][]string{nil, {"React"}, {"React", "CSS"}, {"Figma", "Adobe XD", "Wireframes", "Color"}}

	for _, role := range roles {
		for _, spec := range specs {
			for _, sk := range skills {
				for tier := 0; tier <= 3; tier++ {
					c := candidate.Candidate{Role: role, Specialization: spec, Skills: sk}
					p := posting.Posting{RequiredRole: role, RequiredSpecialization: spec, RequiredSkills: sk, PriorityTier: tier}
					score := s.Score(c, p)
					assert.GreaterOrEqual(t, score, 0)
					assert.LessOrEqual(t, score, 1000)
				}
			}
		}
	}
}
