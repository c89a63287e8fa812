package seeder

import (
	"context"
	"fmt"

	"grad-match/internal/database"

	"go.uber.org/zap"
)

type Runner struct {
	Seeders []Seeder
	Log     *zap.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		n, err := s.Run(ctx, db)
		if err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		log.Info("seeded", zap.String("seeder", s.Name()), zap.Int64("rows", n))
	}
	return nil
}
