package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"grad-match/internal/catalog"
	"grad-match/internal/database"
	"grad-match/internal/domain/candidate"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type MemoryCandidateRepository struct {
	byID       map[int]candidate.Candidate
	byNational map[string]int
}

// NewMemoryCandidateRepository hashes every graduate's record number once at
// construction.
func NewMemoryCandidateRepository(graduates []catalog.Graduate, bcryptCost int) (*MemoryCandidateRepository, error) {
	r := &MemoryCandidateRepository{
		byID:       make(map[int]candidate.Candidate, len(graduates)),
		byNational: make(map[string]int, len(graduates)),
	}
	for _, g := range graduates {
		nationalID := strings.TrimSpace(g.NationalID)
		if _, dup := r.byNational[nationalID]; dup {
			return nil, fmt.Errorf("duplicate national id %q", nationalID)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(g.RecordNumber), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash record number for candidate %d: %w", g.ID, err)
		}

		c := g.Candidate
		c.NationalID = nationalID
		c.Skills = candidate.NormalizeSkills(c.Skills)
		c.RecordHash = string(hash)

		r.byID[c.ID] = c
		r.byNational[nationalID] = c.ID
	}
	return r, nil
}

func (r *MemoryCandidateRepository) GetByID(_ context.Context, id int) (candidate.Candidate, error) {
	c, ok := r.byID[id]
	if !ok {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	return cloneCandidate(c), nil
}

func (r *MemoryCandidateRepository) GetByNationalID(ctx context.Context, nationalID string) (candidate.Candidate, error) {
	id, ok := r.byNational[strings.TrimSpace(nationalID)]
	if !ok {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func cloneCandidate(c candidate.Candidate) candidate.Candidate {
	c.Skills = append([]string(nil), c.Skills...)
	return c
}

type PostgresCandidateRepository struct {
	db database.Querier
}

func NewPostgresCandidateRepository(db database.Querier) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

const candidateColumns = `id, national_id, name, category, profile, role, specialization, skills, record_hash`

func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id int) (candidate.Candidate, error) {
	row := r.db.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
	return scanCandidate(row)
}

func (r *PostgresCandidateRepository) GetByNationalID(ctx context.Context, nationalID string) (candidate.Candidate, error) {
	row := r.db.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE national_id = $1`, strings.TrimSpace(nationalID))
	return scanCandidate(row)
}

func scanCandidate(row database.Row) (candidate.Candidate, error) {
	var c candidate.Candidate
	var skills []string
	err := row.Scan(
		&c.ID,
		&c.NationalID,
		&c.Name,
		&c.Category,
		&c.Profile,
		&c.Role,
		&c.Specialization,
		&skills,
		&c.RecordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Candidate{}, candidate.ErrNotFound
		}
		return candidate.Candidate{}, err
	}
	c.Skills = candidate.NormalizeSkills(skills)
	return c, nil
}
