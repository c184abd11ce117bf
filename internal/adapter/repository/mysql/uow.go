package mysql

import (
	"context"

	"streampay-backend/internal/domain/loan"
	"streampay-backend/internal/domain/stream"
	"streampay-backend/internal/domain/uow"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forUpdate adds a row lock on dialects that speak FOR UPDATE. SQLite (used
// by the tests) serializes writers on its own and rejects the clause.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Streams: &StreamRepository{db: tx},
		Loans:   &LoanRepository{db: tx},
		LoanTxs: &LoanTransactionRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinStreamTx(ctx context.Context, streamID uint64, fn func(r uow.Repos, s *stream.Stream) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the stream row up-front to prevent races
		s, err := r.Streams.(*StreamRepository).GetByIDForUpdate(ctx, streamID)
		if err != nil {
			return err
		}
		return fn(r, s)
	})
}

func (u *GormUoW) WithinLoanTx(ctx context.Context, loanID uint64, fn func(r uow.Repos, l *loan.Loan) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the loan row up-front to prevent races
		l, err := r.Loans.(*LoanRepository).GetByIDForUpdate(ctx, loanID)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}
