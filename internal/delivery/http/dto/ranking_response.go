package dto

import (
	"grad-match/internal/domain/posting"
	"grad-match/internal/usecase"
)

type JobResponse struct {
	ID                     int      `json:"id"`
	Title                  string   `json:"title"`
	Description            string   `json:"description"`
	RequiredCategory       string   `json:"required_category"`
	RequiredProfile        string   `json:"required_profile"`
	Salary                 int64    `json:"salary"`
	Location               string   `json:"location,omitempty"`
	RequiredRole           string   `json:"required_role,omitempty"`
	RequiredSpecialization string   `json:"required_specialization,omitempty"`
	RequiredSkills         []string `json:"required_skills"`
	PriorityTier           int      `json:"priority_tier,omitempty"`
	AffinityScore          int      `json:"affinity_score"`
	Algorithm              string   `json:"algorithm"`
}

type CandidateEcho struct {
	Category       string `json:"category"`
	Profile        string `json:"profile"`
	Role           string `json:"role"`
	Specialization string `json:"specialization"`
}

type RankingResponse struct {
	Jobs      []JobResponse `json:"jobs"`
	Total     int           `json:"total"`
	Candidate CandidateEcho `json:"candidate"`
	Algorithm string        `json:"algorithm"`
}

// NewRankingResponse is the only place ranked results are shaped for the wire.
func NewRankingResponse(res usecase.RankingResult) RankingResponse {
	jobs := make([]JobResponse, 0, len(res.Jobs))
	for _, s := range res.Jobs {
		jobs = append(jobs, newJobResponse(s))
	}

	return RankingResponse{
		Jobs:  jobs,
		Total: len(jobs),
		Candidate: CandidateEcho{
			Category:       res.Candidate.Category,
			Profile:        res.Candidate.Profile,
			Role:           res.Candidate.Role,
			Specialization: res.Candidate.Specialization,
		},
		Algorithm: string(res.Algorithm),
	}
}

func newJobResponse(s posting.Scored) JobResponse {
	skills := s.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	return JobResponse{
		ID:                     s.ID,
		Title:                  s.Title,
		Description:            s.Description,
		RequiredCategory:       s.RequiredCategory,
		RequiredProfile:        s.RequiredProfile,
		Salary:                 s.Salary,
		Location:               s.Location,
		RequiredRole:           s.RequiredRole,
		RequiredSpecialization: s.RequiredSpecialization,
		RequiredSkills:         skills,
		PriorityTier:           s.PriorityTier,
		AffinityScore:          s.AffinityScore,
		Algorithm:              s.Algorithm,
	}
}
