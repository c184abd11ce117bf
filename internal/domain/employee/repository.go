package employee

import (
	"context"

	"streampay-backend/internal/domain/identity"
)

type Repository interface {
	Create(ctx context.Context, e *Employee) error
	GetByAccountID(ctx context.Context, account identity.AccountID) (*Employee, error)
	Save(ctx context.Context, e *Employee) error
	ListByEmployer(ctx context.Context, employer identity.AccountID) ([]Employee, error)
}
