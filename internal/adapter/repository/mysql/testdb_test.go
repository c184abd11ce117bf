package mysql

import (
	"strings"
	"testing"
	"time"

	employeeDomain "streampay-backend/internal/domain/employee"
	"streampay-backend/internal/domain/identity"
	loanDomain "streampay-backend/internal/domain/loan"
	profileDomain "streampay-backend/internal/domain/profile"
	streamDomain "streampay-backend/internal/domain/stream"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	testEmployer = identity.AccountID(strings.Repeat("a", 32))
	testEmployee = identity.AccountID(strings.Repeat("b", 32))
	testOther    = identity.AccountID(strings.Repeat("c", 32))

	testStart = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
)

// openTestDB creates an in-memory sqlite DB and migrates every ledger table.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&streamDomain.Stream{},
		&loanDomain.Loan{},
		&loanDomain.Transaction{},
		&employeeDomain.Employee{},
		&profileDomain.WorkProfile{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeStream(employer, employee identity.AccountID) *streamDomain.Stream {
	return &streamDomain.Stream{
		Employer:        employer,
		Employee:        employee,
		TotalAmount:     1_000_000,
		DurationSeconds: 1000,
		StartTime:       testStart,
		IsActive:        true,
	}
}

func makeLoan(borrower identity.AccountID, streamID uint64) *loanDomain.Loan {
	return &loanDomain.Loan{
		Borrower:           borrower,
		Amount:             500_000,
		Status:             loanDomain.StatusPending,
		RiskTier:           3,
		InterestRateBps:    500,
		CollateralStreamID: streamID,
		CreatedAt:          testStart,
	}
}
