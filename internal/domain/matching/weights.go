package matching

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidWeights = errors.New("invalid weights")

// LexicalWeights drives the keyword-overlap scorer. Setting Description to 0
// reproduces the three-tier table.
type LexicalWeights struct {
	ExactMatch  int `yaml:"exact_match" json:"exact_match"`
	Category    int `yaml:"category" json:"category"`
	Profile     int `yaml:"profile" json:"profile"`
	Title       int `yaml:"title" json:"title"`
	Description int `yaml:"description" json:"description"`
	Max         int `yaml:"max" json:"max"`
}

// HierarchicalWeights drives the taxonomy scorer. Priority multipliers are
// expressed in percent so truncation is exact integer arithmetic.
type HierarchicalWeights struct {
	Role           int `yaml:"role" json:"role"`
	Specialization int `yaml:"specialization" json:"specialization"`
	Skill          int `yaml:"skill" json:"skill"`

	BroadSkillThreshold int `yaml:"broad_skill_threshold" json:"broad_skill_threshold"`
	BroadSkillBonus     int `yaml:"broad_skill_bonus" json:"broad_skill_bonus"`
	GoodSkillThreshold  int `yaml:"good_skill_threshold" json:"good_skill_threshold"`
	GoodSkillBonus      int `yaml:"good_skill_bonus" json:"good_skill_bonus"`

	HighPriorityPercent   int `yaml:"high_priority_percent" json:"high_priority_percent"`
	MediumPriorityPercent int `yaml:"medium_priority_percent" json:"medium_priority_percent"`
	LowPriorityPercent    int `yaml:"low_priority_percent" json:"low_priority_percent"`

	Max int `yaml:"max" json:"max"`
}

type Weights struct {
	Lexical      LexicalWeights      `yaml:"lexical" json:"lexical"`
	Hierarchical HierarchicalWeights `yaml:"hierarchical" json:"hierarchical"`
}

func DefaultWeights() Weights {
	return Weights{
		Lexical: LexicalWeights{
			ExactMatch:  100,
			Category:    40,
			Profile:     30,
			Title:       20,
			Description: 10,
			Max:         100,
		},
		Hierarchical: HierarchicalWeights{
			Role:                  50,
			Specialization:        30,
			Skill:                 15,
			BroadSkillThreshold:   3,
			BroadSkillBonus:       100,
			GoodSkillThreshold:    2,
			GoodSkillBonus:        50,
			HighPriorityPercent:   120,
			MediumPriorityPercent: 110,
			LowPriorityPercent:    100,
			Max:                   1000,
		},
	}
}

// LoadWeights overlays the YAML file at path on top of DefaultWeights.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()
	b, err := os.ReadFile(path)
	if err != nil {
		return Weights{}, fmt.Errorf("read weights %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &w); err != nil {
		return Weights{}, fmt.Errorf("parse weights %s: %w", path, err)
	}
	if err := w.Validate(); err != nil {
		return Weights{}, err
	}
	return w, nil
}

func (w Weights) Validate() error {
	l := w.Lexical
	h := w.Hierarchical

	for name, v := range map[string]int{
		"lexical.exact_match":                  l.ExactMatch,
		"lexical.category":                     l.Category,
		"lexical.profile":                      l.Profile,
		"lexical.title":                        l.Title,
		"lexical.description":                  l.Description,
		"hierarchical.role":                    h.Role,
		"hierarchical.specialization":          h.Specialization,
		"hierarchical.skill":                   h.Skill,
		"hierarchical.broad_skill_bonus":       h.BroadSkillBonus,
		"hierarchical.good_skill_bonus":        h.GoodSkillBonus,
		"hierarchical.high_priority_percent":   h.HighPriorityPercent,
		"hierarchical.medium_priority_percent": h.MediumPriorityPercent,
		"hierarchical.low_priority_percent":    h.LowPriorityPercent,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidWeights, name)
		}
	}
	if l.Max <= 0 || h.Max <= 0 {
		return fmt.Errorf("%w: max must be positive", ErrInvalidWeights)
	}
	if h.GoodSkillThreshold <= 0 || h.BroadSkillThreshold < h.GoodSkillThreshold {
		return fmt.Errorf("%w: skill thresholds must satisfy 0 < good <= broad", ErrInvalidWeights)
	}
	if h.GoodSkillBonus > h.BroadSkillBonus {
		return fmt.Errorf("%w: good_skill_bonus exceeds broad_skill_bonus", ErrInvalidWeights)
	}
	return nil
}

// Fingerprint identifies a weight table; cached rankings are keyed by it.
func (w Weights) Fingerprint() string {
	b, _ := json.Marshal(w)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:8])
}
