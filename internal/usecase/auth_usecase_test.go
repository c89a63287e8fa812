package usecase

import (
	"context"
	"testing"
	"time"

	"grad-match/internal/domain/candidate"
	"grad-match/internal/pkg/jwt"
	ucauth "grad-match/internal/usecase/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authFixture(t *testing.T) (*fakeCandidates, *jwt.HMACService) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("456"), bcrypt.MinCost)
	require.NoError(t, err)

	cands := &fakeCandidates{items: map[int]candidate.Candidate{
		1: {ID: 1, NationalID: "123", Name: "Ana Pérez", Category: "Software", Role: "Development Team", RecordHash: string(hash)},
	}}
	return cands, jwt.NewHMACService("grad-match", "secret", 2*time.Hour)
}

func TestAuth_Login(t *testing.T) {
	cands, svc := authFixture(t)
	uc := NewAuthUsecase(cands, svc, nil)

	res, err := uc.Login(context.Background(), ucauth.LoginInput{NationalID: " 123 ", RecordNumber: "456"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Candidate.ID)
	assert.Empty(t, res.Candidate.RecordHash)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), res.ExpiresAt, time.Minute)

	claims, err := svc.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.CandidateID)
	assert.Equal(t, "Development Team", claims.Role)
}

func TestAuth_LoginFailures(t *testing.T) {
	cands, svc := authFixture(t)
	uc := NewAuthUsecase(cands, svc, nil)
	ctx := context.Background()

	_, err := uc.Login(ctx, ucauth.LoginInput{NationalID: "123", RecordNumber: "999"})
	assert.ErrorIs(t, err, ucauth.ErrInvalidCredentials)

	_, err = uc.Login(ctx, ucauth.LoginInput{NationalID: "999", RecordNumber: "456"})
	assert.ErrorIs(t, err, ucauth.ErrInvalidCredentials)

	_, err = uc.Login(ctx, ucauth.LoginInput{NationalID: "", RecordNumber: "456"})
	assert.ErrorIs(t, err, ucauth.ErrInvalidInput)

	cands.err = errStore
	_, err = uc.Login(ctx, ucauth.LoginInput{NationalID: "123", RecordNumber: "456"})
	assert.ErrorIs(t, err, ucauth.ErrInternal)
}
