package usecase

import (
	"context"
	"errors"
	"time"

	"grad-match/internal/domain/candidate"
	"grad-match/internal/pkg/jwt"
	ucauth "grad-match/internal/usecase/auth"

	"go.uber.org/zap"
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidInput      = errors.New("invalid input")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrInternal          = errors.New("internal error")
)

type LoginResult struct {
	Candidate   candidate.Candidate
	AccessToken string
	ExpiresAt   time.Time
}

type AuthUsecase interface {
	Login(ctx context.Context, in ucauth.LoginInput) (LoginResult, error)
}

type Auth struct {
	authSvc *ucauth.Service
	jwt     jwt.Service
	log     *zap.Logger
}

func NewAuthUsecase(candidates candidate.Repository, jwtSvc jwt.Service, log *zap.Logger) *Auth {
	if log == nil {
		log = zap.NewNop()
	}
	return &Auth{authSvc: ucauth.NewService(candidates), jwt: jwtSvc, log: log}
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (LoginResult, error) {
	c, err := u.authSvc.Login(ctx, in)
	if err != nil {
		if errors.Is(err, ucauth.ErrInvalidCredentials) {
			u.log.Info("login rejected", zap.String("national_id", in.NationalID))
		}
		return LoginResult{}, err
	}

	token, exp, err := u.jwt.GenerateAccessToken(jwt.Identity{
		CandidateID:    c.ID,
		NationalID:     c.NationalID,
		Name:           c.Name,
		Category:       c.Category,
		Role:           c.Role,
		Specialization: c.Specialization,
	})
	if err != nil {
		u.log.Error("issue access token", zap.Int("candidate_id", c.ID), zap.Error(err))
		return LoginResult{}, ErrInternal
	}

	return LoginResult{Candidate: c, AccessToken: token, ExpiresAt: exp}, nil
}
