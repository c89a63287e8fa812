package posting

import (
	"context"
	"errors"
)

const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

var ErrInvalidPriority = errors.New("invalid priority tier")

type Posting struct {
	ID                     int
	Title                  string
	Description            string
	RequiredCategory       string
	RequiredProfile        string
	Salary                 int64
	Location               string
	RequiredRole           string
	RequiredSpecialization string
	RequiredSkills         []string
	PriorityTier           int
}

// Scored is a posting annotated with the affinity score computed for one
// candidate and the name of the algorithm that produced it.
type Scored struct {
	Posting
	AffinityScore int
	Algorithm     string
}

// Tier returns the effective priority tier. Unset tiers rank as low priority.
func (p Posting) Tier() int {
	if p.PriorityTier == 0 {
		return PriorityLow
	}
	return p.PriorityTier
}

// ValidatePriority rejects tiers outside 1..3. Zero means unset and is allowed.
func ValidatePriority(tier int) error {
	if tier == 0 || (tier >= PriorityHigh && tier <= PriorityLow) {
		return nil
	}
	return ErrInvalidPriority
}

type Repository interface {
	List(ctx context.Context) ([]Posting, error)
}
