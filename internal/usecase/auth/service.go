package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"grad-match/internal/domain/candidate"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
)

// LoginInput identifies a graduate by national id and academic record number.
type LoginInput struct {
	NationalID   string
	RecordNumber string
}

type Service struct {
	candidates candidate.Repository
}

func NewService(candidates candidate.Repository) *Service {
	return &Service{candidates: candidates}
}

func (s *Service) Login(ctx context.Context, in LoginInput) (candidate.Candidate, error) {
	nationalID := strings.TrimSpace(in.NationalID)
	record := strings.TrimSpace(in.RecordNumber)
	if nationalID == "" || record == "" {
		return candidate.Candidate{}, ErrInvalidInput
	}

	c, err := s.candidates.GetByNationalID(ctx, nationalID)
	if err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			return candidate.Candidate{}, ErrInvalidCredentials
		}
		return candidate.Candidate{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(c.RecordHash), []byte(record)); err != nil {
		return candidate.Candidate{}, ErrInvalidCredentials
	}

	return sanitizeCandidate(c), nil
}

func sanitizeCandidate(c candidate.Candidate) candidate.Candidate {
	c.RecordHash = ""
	return c
}
