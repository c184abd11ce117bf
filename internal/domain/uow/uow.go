package uow

import (
	"context"

	"streampay-backend/internal/domain/loan"
	"streampay-backend/internal/domain/stream"
)

// Repos bundles the repositories bound to one transaction.
type Repos struct {
	Streams stream.Repository
	Loans   loan.Repository
	LoanTxs loan.TransactionRepository
}

// UnitOfWork serializes mutating operations per record. The convenience
// variants lock the target row up-front so two concurrent mutations of the
// same stream or loan cannot interleave; loan flows may read streams inside
// the same tx but never mutate them, so no cross-record lock order is needed.
type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the stream row first, then pass it in
	WithinStreamTx(ctx context.Context, streamID uint64, fn func(r Repos, s *stream.Stream) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanID uint64, fn func(r Repos, l *loan.Loan) error) error
}
