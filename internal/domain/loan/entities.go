package loan

import (
	"errors"
	"fmt"
	"time"

	"streampay-backend/internal/domain/identity"
)

var (
	ErrNotFound               = errors.New("loan not found")
	ErrInvalidAmount          = errors.New("loan amount must be positive")
	ErrInvalidState           = errors.New("invalid loan state for this operation")
	ErrCollateralInsufficient = errors.New("collateral stream does not cover the requested amount")
	ErrOverRepayment          = errors.New("repayment exceeds outstanding principal")
	ErrOutstandingLoan        = errors.New("borrower already has an open loan")
)

// Status is the closed set of loan states. Values are decoded from storage
// exactly once, via ParseStatus; nothing infers a state from raw strings.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRepaid    Status = "repaid"
	StatusDefaulted Status = "defaulted"
)

// ParseStatus decodes a stored status representation into the closed set.
func ParseStatus(raw string) (Status, error) {
	switch s := Status(raw); s {
	case StatusPending, StatusApproved, StatusRepaid, StatusDefaulted:
		return s, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidState, raw)
	}
}

// Terminal reports whether no further transition can leave the status.
func (s Status) Terminal() bool { return s == StatusRepaid || s == StatusDefaulted }

// Loan is a principal borrowed against an active salary stream. The stream
// reference is a plain lookup; pausing or ending the stream after approval
// does not cascade into the loan.
type Loan struct {
	ID                 uint64             `gorm:"primaryKey;column:id" json:"id"`
	Borrower           identity.AccountID `gorm:"size:32;index:idx_loans_borrower" json:"borrower"`
	Amount             int64              `gorm:"not null" json:"amount"`
	Status             Status             `gorm:"size:16;not null;default:'pending'" json:"status"`
	RiskTier           int                `gorm:"not null" json:"risk_tier"`
	InterestRateBps    int64              `gorm:"not null" json:"interest_rate_bps"`
	RepaidAmount       int64              `gorm:"not null;default:0" json:"repaid_amount"`
	CollateralStreamID uint64             `gorm:"not null;index" json:"collateral_stream_id"`
	CreatedAt          time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// Outstanding returns the unrepaid principal.
func (l *Loan) Outstanding() int64 { return l.Amount - l.RepaidAmount }

// TransactionType classifies ledger history entries.
type TransactionType string

const (
	TxLoanRequest  TransactionType = "loan_request"
	TxLoanApproval TransactionType = "loan_approval"
	TxRepayment    TransactionType = "repayment"
	TxDefault      TransactionType = "default"
)

// Transaction is an append-only audit record of a loan lifecycle event.
// A rejection is recorded as a zero-amount default entry against a loan that
// never left pending; that is what distinguishes it from a post-approval
// default in the history.
type Transaction struct {
	ID        uint64             `gorm:"primaryKey;column:id" json:"id"`
	LoanID    uint64             `gorm:"not null;index:idx_loan_txs_loan" json:"loan_id"`
	Type      TransactionType    `gorm:"column:tx_type;size:16;not null" json:"type"`
	Amount    int64              `gorm:"not null" json:"amount"`
	Borrower  identity.AccountID `gorm:"size:32;index:idx_loan_txs_borrower" json:"borrower"`
	CreatedAt time.Time          `gorm:"autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string { return "loan_transactions" }

// Summary aggregates the whole book for the administrator view.
type Summary struct {
	TotalLoans       int   `json:"total_loans"`
	TotalAmount      int64 `json:"total_amount"`
	PendingLoans     int   `json:"pending_loans"`
	ApprovedLoans    int   `json:"approved_loans"`
	RepaidLoans      int   `json:"repaid_loans"`
	DefaultedLoans   int   `json:"defaulted_loans"`
	TotalOutstanding int64 `json:"total_outstanding"`
}
