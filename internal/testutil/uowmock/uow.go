package uowmock

import (
	"context"
	"errors"

	"streampay-backend/internal/domain/loan"
	"streampay-backend/internal/domain/stream"
	"streampay-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones fail loudly.
type UoW struct {
	WithinTxFn       func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinStreamTxFn func(ctx context.Context, streamID uint64, fn func(r uow.Repos, s *stream.Stream) error) error
	WithinLoanTxFn   func(ctx context.Context, loanID uint64, fn func(r uow.Repos, l *loan.Loan) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinStreamTx(ctx context.Context, streamID uint64, fn func(r uow.Repos, s *stream.Stream) error) error {
	if m.WithinStreamTxFn != nil {
		return m.WithinStreamTxFn(ctx, streamID, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanID uint64, fn func(r uow.Repos, l *loan.Loan) error) error {
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, loanID, fn)
	}
	return errUnimplemented
}

// Passthrough returns a UoW whose variants run fn immediately against the
// given repos, resolving the target record through them; the row-lock
// behavior of the real unit of work is not simulated.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinStreamTxFn: func(ctx context.Context, streamID uint64, fn func(uow.Repos, *stream.Stream) error) error {
			s, err := r.Streams.GetByID(ctx, streamID)
			if err != nil {
				return err
			}
			return fn(r, s)
		},
		WithinLoanTxFn: func(ctx context.Context, loanID uint64, fn func(uow.Repos, *loan.Loan) error) error {
			l, err := r.Loans.GetByID(ctx, loanID)
			if err != nil {
				return err
			}
			return fn(r, l)
		},
	}
}
