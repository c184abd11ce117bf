package loan

import (
	"context"
	"errors"
	"fmt"

	"streampay-backend/internal/domain/identity"
	domain "streampay-backend/internal/domain/loan"
	"streampay-backend/internal/domain/risktier"
	streamDomain "streampay-backend/internal/domain/stream"
	"streampay-backend/internal/domain/uow"
	"streampay-backend/pkg/clock"

	"gorm.io/gorm"
)

// Usecase is the loan ledger: underwriting against a collateral stream, the
// pending/approved/repaid/defaulted state machine, repayment tracking, the
// append-only transaction history and the admin views. The administrator
// identity is injected at construction, never hardcoded.
type Usecase struct {
	loans   domain.Repository
	txs     domain.TransactionRepository
	streams streamDomain.Repository
	uow     uow.UnitOfWork
	clk     clock.Clock
	admin   identity.AccountID
}

func NewUsecase(
	loans domain.Repository,
	txs domain.TransactionRepository,
	streams streamDomain.Repository,
	tx uow.UnitOfWork,
	clk clock.Clock,
	admin identity.AccountID,
) *Usecase {
	return &Usecase{loans: loans, txs: txs, streams: streams, uow: tx, clk: clk, admin: admin}
}

// Request underwrites a new loan against an active salary stream owned (as
// employee) by the borrower. The interest rate comes from the tier table,
// never from the caller. A borrower may hold at most one open loan.
func (u *Usecase) Request(ctx context.Context, in RequestLoanInput, caller identity.AccountID) (*LoanDTO, error) {
	if err := identity.RequireRole(caller, in.Borrower, identity.RoleBorrower); err != nil {
		return nil, err
	}
	if in.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	tier, err := risktier.Lookup(in.RiskTier)
	if err != nil {
		return nil, err
	}

	var dto *LoanDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		s, err := r.Streams.GetByID(ctx, in.CollateralStreamID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return streamDomain.ErrNotFound
			}
			return err
		}
		if !s.IsActive {
			return streamDomain.ErrNotActive
		}
		if err := identity.RequireRole(in.Borrower, s.Employee, identity.RoleEmployee); err != nil {
			return fmt.Errorf("collateral: %w", err)
		}
		if in.Amount > tier.MaxLoanAmount(s.TotalAmount) {
			return domain.ErrCollateralInsufficient
		}

		open, err := r.Loans.HasOpenLoan(ctx, in.Borrower)
		if err != nil {
			return err
		}
		if open {
			return domain.ErrOutstandingLoan
		}

		l := &domain.Loan{
			Borrower:           in.Borrower,
			Amount:             in.Amount,
			Status:             domain.StatusPending,
			RiskTier:           in.RiskTier,
			InterestRateBps:    tier.InterestRateBps,
			RepaidAmount:       0,
			CollateralStreamID: in.CollateralStreamID,
			CreatedAt:          u.clk.Now(),
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		if err := u.record(ctx, r, l, domain.TxLoanRequest, l.Amount); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Approve moves a pending loan to approved. Disbursement itself is an
// external effect triggered by this transition.
func (u *Usecase) Approve(ctx context.Context, loanID uint64, caller identity.AccountID) (*LoanDTO, error) {
	if err := identity.RequireRole(caller, u.admin, identity.RoleAdmin); err != nil {
		return nil, err
	}
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != domain.StatusPending {
			return domain.ErrInvalidState
		}
		// The borrower must still be clean of other open principal.
		others, err := r.Loans.ListByBorrower(ctx, l.Borrower)
		if err != nil {
			return err
		}
		for i := range others {
			o := &others[i]
			if o.ID != l.ID && o.Status == domain.StatusApproved && o.Outstanding() > 0 {
				return domain.ErrOutstandingLoan
			}
		}
		l.Status = domain.StatusApproved
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := u.record(ctx, r, l, domain.TxLoanApproval, l.Amount); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, u.mapNotFound(err)
	}
	return dto, nil
}

// Reject closes a pending loan. Rejection shares the defaulted terminal
// status; the zero-amount default transaction recorded here is its audit
// trail.
func (u *Usecase) Reject(ctx context.Context, loanID uint64, caller identity.AccountID) (*LoanDTO, error) {
	if err := identity.RequireRole(caller, u.admin, identity.RoleAdmin); err != nil {
		return nil, err
	}
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != domain.StatusPending {
			return domain.ErrInvalidState
		}
		l.Status = domain.StatusDefaulted
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := u.record(ctx, r, l, domain.TxDefault, 0); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, u.mapNotFound(err)
	}
	return dto, nil
}

// Repay reduces the outstanding principal. Amounts above the remainder are a
// hard failure, never clamped. Covering the full principal transitions the
// loan to repaid.
func (u *Usecase) Repay(ctx context.Context, loanID uint64, amount int64, caller identity.AccountID) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if err := identity.RequireRole(caller, l.Borrower, identity.RoleBorrower); err != nil {
			return err
		}
		if l.Status != domain.StatusApproved {
			return domain.ErrInvalidState
		}
		if amount <= 0 || amount > l.Outstanding() {
			return domain.ErrOverRepayment
		}
		l.RepaidAmount += amount
		if l.RepaidAmount == l.Amount {
			l.Status = domain.StatusRepaid
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := u.record(ctx, r, l, domain.TxRepayment, amount); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, u.mapNotFound(err)
	}
	return dto, nil
}

// MarkDefault writes off an approved loan.
func (u *Usecase) MarkDefault(ctx context.Context, loanID uint64, caller identity.AccountID) (*LoanDTO, error) {
	if err := identity.RequireRole(caller, u.admin, identity.RoleAdmin); err != nil {
		return nil, err
	}
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != domain.StatusApproved {
			return domain.ErrInvalidState
		}
		l.Status = domain.StatusDefaulted
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := u.record(ctx, r, l, domain.TxDefault, 0); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, u.mapNotFound(err)
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanID uint64) (*LoanDTO, error) {
	l, err := u.loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, u.mapNotFound(err)
	}
	return toDTO(l), nil
}

func (u *Usecase) ListByBorrower(ctx context.Context, borrower identity.AccountID) ([]LoanDTO, error) {
	loans, err := u.loans.ListByBorrower(ctx, borrower)
	if err != nil {
		return nil, err
	}
	return toDTOs(loans), nil
}

// ListAll enumerates every loan on the book. Administrator only.
func (u *Usecase) ListAll(ctx context.Context, caller identity.AccountID) ([]LoanDTO, error) {
	if err := identity.RequireRole(caller, u.admin, identity.RoleAdmin); err != nil {
		return nil, err
	}
	loans, err := u.loans.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(loans), nil
}

func (u *Usecase) ListByStatus(ctx context.Context, status domain.Status) ([]LoanDTO, error) {
	loans, err := u.loans.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return toDTOs(loans), nil
}

// ListPending is the approval queue view.
func (u *Usecase) ListPending(ctx context.Context) ([]LoanDTO, error) {
	return u.ListByStatus(ctx, domain.StatusPending)
}

// Outstanding sums the unrepaid principal across the borrower's approved
// loans.
func (u *Usecase) Outstanding(ctx context.Context, borrower identity.AccountID) (int64, error) {
	loans, err := u.loans.ListByBorrower(ctx, borrower)
	if err != nil {
		return 0, err
	}
	var total int64
	for i := range loans {
		if loans[i].Status == domain.StatusApproved {
			total += loans[i].Outstanding()
		}
	}
	return total, nil
}

// Summary aggregates the whole book. Administrator only.
func (u *Usecase) Summary(ctx context.Context, caller identity.AccountID) (*domain.Summary, error) {
	if err := identity.RequireRole(caller, u.admin, identity.RoleAdmin); err != nil {
		return nil, err
	}
	loans, err := u.loans.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sum := &domain.Summary{}
	for i := range loans {
		l := &loans[i]
		sum.TotalLoans++
		sum.TotalAmount += l.Amount
		switch l.Status {
		case domain.StatusPending:
			sum.PendingLoans++
		case domain.StatusApproved:
			sum.ApprovedLoans++
			sum.TotalOutstanding += l.Outstanding()
		case domain.StatusRepaid:
			sum.RepaidLoans++
		case domain.StatusDefaulted:
			sum.DefaultedLoans++
		}
	}
	return sum, nil
}

func (u *Usecase) Transactions(ctx context.Context, loanID uint64) ([]domain.Transaction, error) {
	if _, err := u.loans.GetByID(ctx, loanID); err != nil {
		return nil, u.mapNotFound(err)
	}
	return u.txs.ListByLoan(ctx, loanID)
}

func (u *Usecase) BorrowerTransactions(ctx context.Context, borrower identity.AccountID) ([]domain.Transaction, error) {
	return u.txs.ListByBorrower(ctx, borrower)
}

// AllTransactions enumerates the full audit history. Administrator only.
func (u *Usecase) AllTransactions(ctx context.Context, caller identity.AccountID) ([]domain.Transaction, error) {
	if err := identity.RequireRole(caller, u.admin, identity.RoleAdmin); err != nil {
		return nil, err
	}
	return u.txs.ListAll(ctx)
}

func (u *Usecase) record(ctx context.Context, r uow.Repos, l *domain.Loan, typ domain.TransactionType, amount int64) error {
	return r.LoanTxs.Create(ctx, &domain.Transaction{
		LoanID:    l.ID,
		Type:      typ,
		Amount:    amount,
		Borrower:  l.Borrower,
		CreatedAt: u.clk.Now(),
	})
}

func (u *Usecase) mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
