package repository

import (
	"context"
	"fmt"

	"grad-match/internal/database"
	"grad-match/internal/domain/posting"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// postingRecord is the catalog boundary shape. Rows failing validation never
// reach the scorers.
type postingRecord struct {
	ID           int    `validate:"gt=0"`
	Title        string `validate:"required"`
	Salary       int64  `validate:"gte=0"`
	PriorityTier int    `validate:"gte=0,lte=3"`
}

func validatePosting(v *validator.Validate, p posting.Posting) error {
	rec := postingRecord{ID: p.ID, Title: p.Title, Salary: p.Salary, PriorityTier: p.PriorityTier}
	if err := v.Struct(rec); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			if fe.Field() == "PriorityTier" {
				return fmt.Errorf("posting %d: %w", p.ID, posting.ErrInvalidPriority)
			}
			return fmt.Errorf("posting %d: invalid %s (%s)", p.ID, fe.Field(), fe.Tag())
		}
		return err
	}
	return posting.ValidatePriority(p.PriorityTier)
}

// filterValid drops postings that fail boundary validation and logs each one.
func filterValid(v *validator.Validate, log *zap.Logger, in []posting.Posting) []posting.Posting {
	out := make([]posting.Posting, 0, len(in))
	for _, p := range in {
		if err := validatePosting(v, p); err != nil {
			log.Warn("skipping invalid posting", zap.Int("posting_id", p.ID), zap.Error(err))
			continue
		}
		out = append(out, p)
	}
	return out
}

type MemoryPostingRepository struct {
	postings []posting.Posting
}

func NewMemoryPostingRepository(postings []posting.Posting, log *zap.Logger) *MemoryPostingRepository {
	if log == nil {
		log = zap.NewNop()
	}
	valid := filterValid(validator.New(), log, postings)
	for i := range valid {
		valid[i].RequiredSkills = append([]string(nil), valid[i].RequiredSkills...)
	}
	return &MemoryPostingRepository{postings: valid}
}

func (r *MemoryPostingRepository) List(_ context.Context) ([]posting.Posting, error) {
	out := make([]posting.Posting, len(r.postings))
	for i, p := range r.postings {
		p.RequiredSkills = append([]string(nil), p.RequiredSkills...)
		out[i] = p
	}
	return out, nil
}

type PostgresPostingRepository struct {
	db       database.Querier
	validate *validator.Validate
	log      *zap.Logger
}

func NewPostgresPostingRepository(db database.Querier, log *zap.Logger) *PostgresPostingRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &PostgresPostingRepository{db: db, validate: validator.New(), log: log}
}

func (r *PostgresPostingRepository) List(ctx context.Context) ([]posting.Posting, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, title, description, required_category, required_profile, salary, location,
       required_role, required_specialization, required_skills, priority_tier
FROM postings
ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]posting.Posting, 0)
	for rows.Next() {
		var p posting.Posting
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&p.RequiredCategory,
			&p.RequiredProfile,
			&p.Salary,
			&p.Location,
			&p.RequiredRole,
			&p.RequiredSpecialization,
			&p.RequiredSkills,
			&p.PriorityTier,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return filterValid(r.validate, r.log, out), nil
}
