package dto

import (
	"time"

	"grad-match/internal/domain/candidate"
	"grad-match/internal/usecase"
)

type LoginRequest struct {
	NationalID   string `json:"national_id" validate:"required,max=32"`
	RecordNumber string `json:"record_number" validate:"required,max=32"`
}

type CandidateResponse struct {
	ID             int      `json:"id"`
	NationalID     string   `json:"national_id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Profile        string   `json:"profile"`
	Role           string   `json:"role"`
	Specialization string   `json:"specialization"`
	Skills         []string `json:"skills"`
}

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	ExpiresAt   string            `json:"expires_at"`
	Candidate   CandidateResponse `json:"candidate"`
}

func NewLoginResponse(res usecase.LoginResult) LoginResponse {
	return LoginResponse{
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   res.ExpiresAt.UTC().Format(time.RFC3339),
		Candidate:   NewCandidateResponse(res.Candidate),
	}
}

func NewCandidateResponse(c candidate.Candidate) CandidateResponse {
	skills := c.Skills
	if skills == nil {
		skills = []string{}
	}
	return CandidateResponse{
		ID:             c.ID,
		NationalID:     c.NationalID,
		Name:           c.Name,
		Category:       c.Category,
		Profile:        c.Profile,
		Role:           c.Role,
		Specialization: c.Specialization,
		Skills:         skills,
	}
}
