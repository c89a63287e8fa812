package seeder

import (
	"context"
	"fmt"

	"grad-match/internal/catalog"
	"grad-match/internal/database"
	"grad-match/internal/domain/posting"

	"golang.org/x/crypto/bcrypt"
)

// Defaults returns the seeders for the built-in catalog.
func Defaults(bcryptCost int) []Seeder {
	return []Seeder{
		CandidatesSeeder{Graduates: catalog.Graduates(), BcryptCost: bcryptCost},
		PostingsSeeder{Postings: catalog.Postings()},
	}
}

type CandidatesSeeder struct {
	Graduates  []catalog.Graduate
	BcryptCost int
}

func (CandidatesSeeder) Name() string { return "candidates" }

func (s CandidatesSeeder) Run(ctx context.Context, db database.DB) (int64, error) {
	if err := EnsureTableColumns(ctx, db, "candidates",
		"id", "national_id", "name", "category", "profile", "role", "specialization", "skills", "record_hash",
	); err != nil {
		return 0, err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	var total int64
	for _, g := range s.Graduates {
		hash, err := bcrypt.GenerateFromPassword([]byte(g.RecordNumber), s.BcryptCost)
		if err != nil {
			return 0, fmt.Errorf("hash record number for candidate %d: %w", g.ID, err)
		}
		affected, err := insertCandidate(ctx, tx, g, string(hash))
		if err != nil {
			return 0, err
		}
		total += affected
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return total, nil
}

type PostingsSeeder struct {
	Postings []posting.Posting
}

func (PostingsSeeder) Name() string { return "postings" }

func (s PostingsSeeder) Run(ctx context.Context, db database.DB) (int64, error) {
	if err := EnsureTableColumns(ctx, db, "postings",
		"id", "title", "description", "required_category", "required_profile", "salary", "location",
		"required_role", "required_specialization", "required_skills", "priority_tier",
	); err != nil {
		return 0, err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	var total int64
	for _, p := range s.Postings {
		if err := posting.ValidatePriority(p.PriorityTier); err != nil {
			return 0, fmt.Errorf("posting %d: %w", p.ID, err)
		}
		affected, err := insertPosting(ctx, tx, p)
		if err != nil {
			return 0, err
		}
		total += affected
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return total, nil
}

func insertCandidate(ctx context.Context, q database.Querier, g catalog.Graduate, recordHash string) (int64, error) {
	skills := g.Skills
	if skills == nil {
		skills = []string{}
	}
	return q.Exec(ctx, `
INSERT INTO candidates (id, national_id, name, category, profile, role, specialization, skills, record_hash)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO NOTHING`,
		g.ID, g.NationalID, g.Name, g.Category, g.Profile, g.Role, g.Specialization, skills, recordHash,
	)
}

func insertPosting(ctx context.Context, q database.Querier, p posting.Posting) (int64, error) {
	skills := p.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	return q.Exec(ctx, `
INSERT INTO postings (id, title, description, required_category, required_profile, salary, location,
                      required_role, required_specialization, required_skills, priority_tier)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO NOTHING`,
		p.ID, p.Title, p.Description, p.RequiredCategory, p.RequiredProfile, p.Salary, p.Location,
		p.RequiredRole, p.RequiredSpecialization, skills, p.PriorityTier,
	)
}
