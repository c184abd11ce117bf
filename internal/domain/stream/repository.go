package stream

import (
	"context"

	"streampay-backend/internal/domain/identity"
)

type Repository interface {
	Create(ctx context.Context, s *Stream) error
	GetByID(ctx context.Context, id uint64) (*Stream, error)
	Save(ctx context.Context, s *Stream) error
	ListAll(ctx context.Context) ([]Stream, error)
	ListByEmployee(ctx context.Context, employee identity.AccountID) ([]Stream, error)
	ListByEmployer(ctx context.Context, employer identity.AccountID) ([]Stream, error)
}
