package profile

import (
	"context"

	"streampay-backend/internal/domain/identity"
)

type Repository interface {
	Upsert(ctx context.Context, p *WorkProfile) error
	GetByEmployee(ctx context.Context, employee identity.AccountID) (*WorkProfile, error)
}
