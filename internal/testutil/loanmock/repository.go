package loanmock

import (
	"context"
	"errors"

	"streampay-backend/internal/domain/identity"
	domain "streampay-backend/internal/domain/loan"
)

var (
	_ domain.Repository            = (*Repo)(nil)
	_ domain.TransactionRepository = (*TxRepo)(nil)
)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock that satisfies loan.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, l *domain.Loan) error
	GetByIDFn        func(ctx context.Context, id uint64) (*domain.Loan, error)
	SaveFn           func(ctx context.Context, l *domain.Loan) error
	ListAllFn        func(ctx context.Context) ([]domain.Loan, error)
	ListByBorrowerFn func(ctx context.Context, borrower identity.AccountID) ([]domain.Loan, error)
	ListByStatusFn   func(ctx context.Context, status domain.Status) ([]domain.Loan, error)
	HasOpenLoanFn    func(ctx context.Context, borrower identity.AccountID) (bool, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Loan, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByBorrower(ctx context.Context, borrower identity.AccountID) ([]domain.Loan, error) {
	if m.ListByBorrowerFn != nil {
		return m.ListByBorrowerFn(ctx, borrower)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Loan, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, errUnimplemented
}

func (m *Repo) HasOpenLoan(ctx context.Context, borrower identity.AccountID) (bool, error) {
	if m.HasOpenLoanFn != nil {
		return m.HasOpenLoanFn(ctx, borrower)
	}
	return false, nil
}

// TxRepo is a function-backed mock that satisfies loan.TransactionRepository.
// By default Create appends to Recorded so tests can assert the audit trail.
type TxRepo struct {
	Recorded []domain.Transaction

	CreateFn         func(ctx context.Context, tx *domain.Transaction) error
	ListByLoanFn     func(ctx context.Context, loanID uint64) ([]domain.Transaction, error)
	ListByBorrowerFn func(ctx context.Context, borrower identity.AccountID) ([]domain.Transaction, error)
	ListAllFn        func(ctx context.Context) ([]domain.Transaction, error)
}

func (m *TxRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, tx)
	}
	m.Recorded = append(m.Recorded, *tx)
	return nil
}

func (m *TxRepo) ListByLoan(ctx context.Context, loanID uint64) ([]domain.Transaction, error) {
	if m.ListByLoanFn != nil {
		return m.ListByLoanFn(ctx, loanID)
	}
	var out []domain.Transaction
	for _, tx := range m.Recorded {
		if tx.LoanID == loanID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (m *TxRepo) ListByBorrower(ctx context.Context, borrower identity.AccountID) ([]domain.Transaction, error) {
	if m.ListByBorrowerFn != nil {
		return m.ListByBorrowerFn(ctx, borrower)
	}
	var out []domain.Transaction
	for _, tx := range m.Recorded {
		if tx.Borrower == borrower {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (m *TxRepo) ListAll(ctx context.Context) ([]domain.Transaction, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return m.Recorded, nil
}
