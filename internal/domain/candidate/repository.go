package candidate

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("candidate not found")

type Repository interface {
	GetByID(ctx context.Context, id int) (Candidate, error)
	GetByNationalID(ctx context.Context, nationalID string) (Candidate, error)
}
