package loan

import (
	"context"

	"streampay-backend/internal/domain/identity"
)

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	ListAll(ctx context.Context) ([]Loan, error)
	ListByBorrower(ctx context.Context, borrower identity.AccountID) ([]Loan, error)
	ListByStatus(ctx context.Context, status Status) ([]Loan, error)
	// HasOpenLoan reports whether the borrower holds any pending or approved
	// loan. Used as the one-open-loan underwriting gate.
	HasOpenLoan(ctx context.Context, borrower identity.AccountID) (bool, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *Transaction) error
	ListByLoan(ctx context.Context, loanID uint64) ([]Transaction, error)
	ListByBorrower(ctx context.Context, borrower identity.AccountID) ([]Transaction, error)
	ListAll(ctx context.Context) ([]Transaction, error)
}
