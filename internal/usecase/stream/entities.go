package stream

import (
	"time"

	"streampay-backend/internal/domain/identity"
	domain "streampay-backend/internal/domain/stream"
)

type CreateStreamInput struct {
	Employer        identity.AccountID `json:"employer"`
	Employee        identity.AccountID `json:"employee"`
	TotalAmount     int64              `json:"total_amount"`
	DurationSeconds int64              `json:"duration_seconds"`
}

type StreamDTO struct {
	ID              uint64             `json:"id"`
	Employer        identity.AccountID `json:"employer"`
	Employee        identity.AccountID `json:"employee"`
	TotalAmount     int64              `json:"total_amount"`
	DurationSeconds int64              `json:"duration_seconds"`
	StartTime       time.Time          `json:"start_time"`
	WithdrawnAmount int64              `json:"withdrawn_amount"`
	AvailableAmount int64              `json:"available_amount"`
	IsActive        bool               `json:"is_active"`
	IsPaused        bool               `json:"is_paused"`
}

func toDTO(s *domain.Stream, now time.Time) *StreamDTO {
	return &StreamDTO{
		ID:              s.ID,
		Employer:        s.Employer,
		Employee:        s.Employee,
		TotalAmount:     s.TotalAmount,
		DurationSeconds: s.DurationSeconds,
		StartTime:       s.StartTime,
		WithdrawnAmount: s.WithdrawnAmount,
		AvailableAmount: s.AvailableAt(now),
		IsActive:        s.IsActive,
		IsPaused:        s.IsPaused,
	}
}

func toDTOs(streams []domain.Stream, now time.Time) []StreamDTO {
	out := make([]StreamDTO, 0, len(streams))
	for i := range streams {
		out = append(out, *toDTO(&streams[i], now))
	}
	return out
}
