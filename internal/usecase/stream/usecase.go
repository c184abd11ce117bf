package stream

import (
	"context"
	"errors"
	"fmt"

	"streampay-backend/internal/domain/identity"
	domain "streampay-backend/internal/domain/stream"
	"streampay-backend/internal/domain/uow"
	"streampay-backend/pkg/clock"

	"gorm.io/gorm"
)

// Usecase is the stream ledger: stream lifecycle, vesting accounting and the
// read queries over stream records. All mutations run inside a per-stream
// row-locked transaction; `now` always comes from the injected clock.
type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	clk  clock.Clock
}

func NewUsecase(repo domain.Repository, tx uow.UnitOfWork, clk clock.Clock) *Usecase {
	return &Usecase{repo: repo, uow: tx, clk: clk}
}

// Create opens a new salary stream. The caller must be the funding employer.
func (u *Usecase) Create(ctx context.Context, in CreateStreamInput, caller identity.AccountID) (*StreamDTO, error) {
	if in.TotalAmount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if in.DurationSeconds <= 0 {
		return nil, domain.ErrInvalidDuration
	}
	if err := identity.RequireRole(caller, in.Employer, identity.RoleEmployer); err != nil {
		return nil, err
	}

	now := u.clk.Now()
	s := &domain.Stream{
		Employer:        in.Employer,
		Employee:        in.Employee,
		TotalAmount:     in.TotalAmount,
		DurationSeconds: in.DurationSeconds,
		StartTime:       now,
		WithdrawnAmount: 0,
		IsActive:        true,
		IsPaused:        false,
	}
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("create stream: %w", err)
	}
	return toDTO(s, now), nil
}

// GetAvailable returns the amount the employee could withdraw right now.
func (u *Usecase) GetAvailable(ctx context.Context, streamID uint64) (int64, error) {
	s, err := u.getStream(ctx, streamID)
	if err != nil {
		return 0, err
	}
	return s.AvailableAt(u.clk.Now()), nil
}

// Withdraw moves part of the vested balance to the employee. Repeating the
// same call recomputes against the new withdrawn amount; dedup is the
// transport's job (idempotency layer), not the ledger's.
func (u *Usecase) Withdraw(ctx context.Context, streamID uint64, amount int64, caller identity.AccountID) (*StreamDTO, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	var dto *StreamDTO
	err := u.uow.WithinStreamTx(ctx, streamID, func(r uow.Repos, s *domain.Stream) error {
		if err := identity.RequireRole(caller, s.Employee, identity.RoleEmployee); err != nil {
			return err
		}
		if !s.IsActive {
			return domain.ErrNotActive
		}
		if s.IsPaused {
			return domain.ErrPaused
		}
		now := u.clk.Now()
		if amount > s.AvailableAt(now) {
			return domain.ErrInsufficientAvailable
		}
		s.WithdrawnAmount += amount
		if err := r.Streams.Save(ctx, s); err != nil {
			return err
		}
		dto = toDTO(s, now)
		return nil
	})
	if err != nil {
		return nil, u.mapNotFound(err)
	}
	return dto, nil
}

// Pause freezes the stream: the available amount is snapshotted once, here,
// and withdrawals are blocked until resume. Elapsed time keeps running
// against the original start; pausing does not extend the duration.
func (u *Usecase) Pause(ctx context.Context, streamID uint64, caller identity.AccountID) (*StreamDTO, error) {
	var dto *StreamDTO
	err := u.uow.WithinStreamTx(ctx, streamID, func(r uow.Repos, s *domain.Stream) error {
		if err := identity.RequireRole(caller, s.Employer, identity.RoleEmployer); err != nil {
			return err
		}
		if !s.IsActive {
			return domain.ErrNotActive
		}
		if s.IsPaused {
			return domain.ErrPaused
		}
		now := u.clk.Now()
		frozen := s.AvailableAt(now)
		s.FrozenAvailable = &frozen
		s.IsPaused = true
		if err := r.Streams.Save(ctx, s); err != nil {
			return err
		}
		dto = toDTO(s, now)
		return nil
	})
	if err != nil {
		return nil, u.mapNotFound(err)
	}
	return dto, nil
}

// Resume unfreezes a paused stream and drops the snapshot.
func (u *Usecase) Resume(ctx context.Context, streamID uint64, caller identity.AccountID) (*StreamDTO, error) {
	var dto *StreamDTO
	err := u.uow.WithinStreamTx(ctx, streamID, func(r uow.Repos, s *domain.Stream) error {
		if err := identity.RequireRole(caller, s.Employer, identity.RoleEmployer); err != nil {
			return err
		}
		if !s.IsActive {
			return domain.ErrNotActive
		}
		if !s.IsPaused {
			return domain.ErrNotPaused
		}
		s.IsPaused = false
		s.FrozenAvailable = nil
		if err := r.Streams.Save(ctx, s); err != nil {
			return err
		}
		dto = toDTO(s, u.clk.Now())
		return nil
	})
	if err != nil {
		return nil, u.mapNotFound(err)
	}
	return dto, nil
}

// End terminates the stream permanently. Any unwithdrawn vested balance is
// forfeited; this cannot be undone.
func (u *Usecase) End(ctx context.Context, streamID uint64, caller identity.AccountID) (*StreamDTO, error) {
	var dto *StreamDTO
	err := u.uow.WithinStreamTx(ctx, streamID, func(r uow.Repos, s *domain.Stream) error {
		if err := identity.RequireRole(caller, s.Employer, identity.RoleEmployer); err != nil {
			return err
		}
		if !s.IsActive {
			return domain.ErrNotActive
		}
		s.IsActive = false
		s.IsPaused = false
		s.FrozenAvailable = nil
		if err := r.Streams.Save(ctx, s); err != nil {
			return err
		}
		dto = toDTO(s, u.clk.Now())
		return nil
	})
	if err != nil {
		return nil, u.mapNotFound(err)
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, streamID uint64) (*StreamDTO, error) {
	s, err := u.getStream(ctx, streamID)
	if err != nil {
		return nil, err
	}
	return toDTO(s, u.clk.Now()), nil
}

func (u *Usecase) ListAll(ctx context.Context) ([]StreamDTO, error) {
	streams, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(streams, u.clk.Now()), nil
}

func (u *Usecase) ListByEmployee(ctx context.Context, employee identity.AccountID) ([]StreamDTO, error) {
	streams, err := u.repo.ListByEmployee(ctx, employee)
	if err != nil {
		return nil, err
	}
	return toDTOs(streams, u.clk.Now()), nil
}

func (u *Usecase) ListByEmployer(ctx context.Context, employer identity.AccountID) ([]StreamDTO, error) {
	streams, err := u.repo.ListByEmployer(ctx, employer)
	if err != nil {
		return nil, err
	}
	return toDTOs(streams, u.clk.Now()), nil
}

func (u *Usecase) getStream(ctx context.Context, streamID uint64) (*domain.Stream, error) {
	s, err := u.repo.GetByID(ctx, streamID)
	if err != nil {
		return nil, u.mapNotFound(err)
	}
	return s, nil
}

func (u *Usecase) mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
