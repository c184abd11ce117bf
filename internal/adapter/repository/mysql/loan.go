package mysql

import (
	"context"

	"streampay-backend/internal/domain/identity"
	loanDomain "streampay-backend/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).First(&out, "id = ?", id)
	return &out, res.Error
}

// GetByIDForUpdate locks the loan row for the duration of the surrounding tx.
func (r *LoanRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := forUpdate(r.db.WithContext(ctx)).First(&out, "id = ?", id)
	return &out, res.Error
}

func (r *LoanRepository) ListAll(ctx context.Context) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListByBorrower(ctx context.Context, borrower identity.AccountID) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).Where("borrower = ?", borrower).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListByStatus(ctx context.Context, status loanDomain.Status) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).Where("status = ?", status).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *LoanRepository) HasOpenLoan(ctx context.Context, borrower identity.AccountID) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("borrower = ? AND status IN ?", borrower,
			[]loanDomain.Status{loanDomain.StatusPending, loanDomain.StatusApproved}).
		Count(&n)
	return n > 0, res.Error
}

type LoanTransactionRepository struct{ db *gorm.DB }

func NewLoanTransactionRepository(db *gorm.DB) *LoanTransactionRepository {
	return &LoanTransactionRepository{db: db}
}

func (r *LoanTransactionRepository) Create(ctx context.Context, tx *loanDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *LoanTransactionRepository) ListByLoan(ctx context.Context, loanID uint64) ([]loanDomain.Transaction, error) {
	var out []loanDomain.Transaction
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *LoanTransactionRepository) ListByBorrower(ctx context.Context, borrower identity.AccountID) ([]loanDomain.Transaction, error) {
	var out []loanDomain.Transaction
	res := r.db.WithContext(ctx).Where("borrower = ?", borrower).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *LoanTransactionRepository) ListAll(ctx context.Context) ([]loanDomain.Transaction, error) {
	var out []loanDomain.Transaction
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}
