package streammock

import (
	"context"
	"errors"

	"streampay-backend/internal/domain/identity"
	domain "streampay-backend/internal/domain/stream"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("streammock: method not implemented")

// Repo is a function-backed mock that satisfies stream.Repository.
// Fill in the function fields a test needs; unfilled lookups fail loudly.
type Repo struct {
	CreateFn         func(ctx context.Context, s *domain.Stream) error
	GetByIDFn        func(ctx context.Context, id uint64) (*domain.Stream, error)
	SaveFn           func(ctx context.Context, s *domain.Stream) error
	ListAllFn        func(ctx context.Context) ([]domain.Stream, error)
	ListByEmployeeFn func(ctx context.Context, employee identity.AccountID) ([]domain.Stream, error)
	ListByEmployerFn func(ctx context.Context, employer identity.AccountID) ([]domain.Stream, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.Stream) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Stream, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, s *domain.Stream) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Stream, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByEmployee(ctx context.Context, employee identity.AccountID) ([]domain.Stream, error) {
	if m.ListByEmployeeFn != nil {
		return m.ListByEmployeeFn(ctx, employee)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByEmployer(ctx context.Context, employer identity.AccountID) ([]domain.Stream, error) {
	if m.ListByEmployerFn != nil {
		return m.ListByEmployerFn(ctx, employer)
	}
	return nil, errUnimplemented
}
