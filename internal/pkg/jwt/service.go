package jwt

import (
	"errors"
	"strconv"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TokenTypeAccess = "access"

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Identity is the candidate profile carried inside a token.
type Identity struct {
	CandidateID    int    `json:"candidate_id"`
	NationalID     string `json:"national_id"`
	Name           string `json:"name,omitempty"`
	Category       string `json:"category,omitempty"`
	Role           string `json:"role,omitempty"`
	Specialization string `json:"specialization,omitempty"`
}

type Claims struct {
	Identity
	TokenType string `json:"token_type"`

	jwtlib.RegisteredClaims
}

type Service interface {
	GenerateAccessToken(id Identity) (string, time.Time, error)
	ValidateToken(tokenString string) (Claims, error)
}

type HMACService struct {
	issuer    string
	secret    []byte
	expiresIn time.Duration

	now func() time.Time
}

func NewHMACService(issuer, secret string, expiresIn time.Duration) *HMACService {
	return &HMACService{
		issuer:    issuer,
		secret:    []byte(secret),
		expiresIn: expiresIn,
		now:       time.Now,
	}
}

func (s *HMACService) GenerateAccessToken(id Identity) (string, time.Time, error) {
	if len(s.secret) == 0 || s.expiresIn <= 0 {
		return "", time.Time{}, ErrTokenInvalid
	}
	if id.CandidateID <= 0 {
		return "", time.Time{}, ErrTokenInvalid
	}

	now := s.now().UTC()
	exp := now.Add(s.expiresIn)

	c := Claims{
		Identity:  id,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   strconv.Itoa(id.CandidateID),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(exp),
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

func (s *HMACService) ValidateToken(tokenString string) (Claims, error) {
	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(s.now),
		jwtlib.WithExpirationRequired(),
	)

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}

	if c.TokenType != TokenTypeAccess || c.CandidateID <= 0 {
		return Claims{}, ErrTokenInvalid
	}
	if s.issuer != "" && c.Issuer != s.issuer {
		return Claims{}, ErrTokenInvalid
	}

	return c, nil
}
