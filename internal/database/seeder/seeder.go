package seeder

import (
	"context"

	"grad-match/internal/database"
)

// Seeder loads one catalog table. Runs must be idempotent.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) (int64, error)
}
