package stream

import (
	"errors"
	"math/big"
	"time"

	"streampay-backend/internal/domain/identity"
)

var (
	ErrNotFound              = errors.New("stream not found")
	ErrInvalidAmount         = errors.New("total amount must be positive")
	ErrInvalidDuration       = errors.New("duration must be positive")
	ErrNotActive             = errors.New("stream is not active")
	ErrPaused                = errors.New("stream is paused")
	ErrNotPaused             = errors.New("stream is not paused")
	ErrInsufficientAvailable = errors.New("insufficient available balance")
)

// Stream is a time-vesting salary commitment. Funds vest continuously from
// StartTime over DurationSeconds; the vested rate is never persisted
// pre-divided, earned amounts are always derived from (TotalAmount,
// DurationSeconds) so the full total is reachable at the duration boundary.
type Stream struct {
	ID              uint64             `gorm:"primaryKey;column:id" json:"id"`
	Employer        identity.AccountID `gorm:"size:32;index:idx_streams_employer" json:"employer"`
	Employee        identity.AccountID `gorm:"size:32;index:idx_streams_employee" json:"employee"`
	TotalAmount     int64              `gorm:"not null" json:"total_amount"`
	DurationSeconds int64              `gorm:"not null" json:"duration_seconds"`
	StartTime       time.Time          `gorm:"not null" json:"start_time"`
	WithdrawnAmount int64              `gorm:"not null;default:0" json:"withdrawn_amount"`
	IsActive        bool               `gorm:"not null;default:true" json:"is_active"`
	IsPaused        bool               `gorm:"not null;default:false" json:"is_paused"`
	// Snapshot of the available amount taken when the stream was paused.
	// NULL whenever the stream is not paused.
	FrozenAvailable *int64    `gorm:"column:frozen_available" json:"frozen_available,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Stream) TableName() string { return "streams" }

// ElapsedSeconds returns whole seconds since StartTime, clamped at zero.
func (s *Stream) ElapsedSeconds(now time.Time) int64 {
	elapsed := now.Unix() - s.StartTime.Unix()
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// EarnedAt returns floor(TotalAmount * elapsed / DurationSeconds), clamped to
// TotalAmount. The multiply is done in big.Int so large totals cannot
// overflow int64 mid-computation.
func (s *Stream) EarnedAt(now time.Time) int64 {
	elapsed := s.ElapsedSeconds(now)
	if elapsed >= s.DurationSeconds {
		return s.TotalAmount
	}
	earned := new(big.Int).Mul(big.NewInt(s.TotalAmount), big.NewInt(elapsed))
	earned.Quo(earned, big.NewInt(s.DurationSeconds))
	return earned.Int64()
}

// AvailableAt returns the amount withdrawable at the given instant: zero for
// an ended stream, the frozen snapshot while paused, otherwise earned minus
// withdrawn, clamped at zero.
func (s *Stream) AvailableAt(now time.Time) int64 {
	if !s.IsActive {
		return 0
	}
	if s.IsPaused {
		if s.FrozenAvailable != nil {
			return *s.FrozenAvailable
		}
		return 0
	}
	available := s.EarnedAt(now) - s.WithdrawnAmount
	if available < 0 {
		return 0
	}
	return available
}
