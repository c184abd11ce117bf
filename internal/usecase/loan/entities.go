package loan

import (
	"time"

	"streampay-backend/internal/domain/identity"
	domain "streampay-backend/internal/domain/loan"
)

type RequestLoanInput struct {
	Borrower           identity.AccountID `json:"borrower"`
	Amount             int64              `json:"amount"`
	RiskTier           int                `json:"risk_tier"`
	CollateralStreamID uint64             `json:"collateral_stream_id"`
}

type LoanDTO struct {
	ID                 uint64             `json:"id"`
	Borrower           identity.AccountID `json:"borrower"`
	Amount             int64              `json:"amount"`
	Status             domain.Status      `json:"status"`
	RiskTier           int                `json:"risk_tier"`
	InterestRateBps    int64              `json:"interest_rate_bps"`
	RepaidAmount       int64              `json:"repaid_amount"`
	CollateralStreamID uint64             `json:"collateral_stream_id"`
	CreatedAt          time.Time          `json:"created_at"`
}

func toDTO(l *domain.Loan) *LoanDTO {
	return &LoanDTO{
		ID:                 l.ID,
		Borrower:           l.Borrower,
		Amount:             l.Amount,
		Status:             l.Status,
		RiskTier:           l.RiskTier,
		InterestRateBps:    l.InterestRateBps,
		RepaidAmount:       l.RepaidAmount,
		CollateralStreamID: l.CollateralStreamID,
		CreatedAt:          l.CreatedAt,
	}
}

func toDTOs(loans []domain.Loan) []LoanDTO {
	out := make([]LoanDTO, 0, len(loans))
	for i := range loans {
		out = append(out, *toDTO(&loans[i]))
	}
	return out
}
