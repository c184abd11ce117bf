package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "streampay-backend/internal/domain/employee"
	"streampay-backend/internal/domain/identity"
	"streampay-backend/pkg/clock"

	"gorm.io/gorm"
)

var ErrAlreadyRegistered = errors.New("employee already registered")

// Usecase maintains the employer-owned staff registry.
type Usecase struct {
	repo domain.Repository
	clk  clock.Clock
}

func NewUsecase(repo domain.Repository, clk clock.Clock) *Usecase {
	return &Usecase{repo: repo, clk: clk}
}

type RegisterInput struct {
	Employer   identity.AccountID `json:"employer"`
	AccountID  identity.AccountID `json:"account_id"`
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Phone      string             `json:"phone"`
	Position   string             `json:"position"`
	Department string             `json:"department"`
	StartDate  time.Time          `json:"start_date"`
}

type UpdateInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Position   string `json:"position"`
	Department string `json:"department"`
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput, caller identity.AccountID) (*domain.Employee, error) {
	if err := identity.RequireRole(caller, in.Employer, identity.RoleEmployer); err != nil {
		return nil, err
	}
	if _, err := u.repo.GetByAccountID(ctx, in.AccountID); err == nil {
		return nil, ErrAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	e := &domain.Employee{
		AccountID:    in.AccountID,
		Employer:     in.Employer,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Position:     in.Position,
		Department:   in.Department,
		StartDate:    in.StartDate,
		IsActive:     true,
		RegisteredAt: u.clk.Now(),
	}
	if err := u.repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("register employee: %w", err)
	}
	return e, nil
}

func (u *Usecase) Update(ctx context.Context, account identity.AccountID, in UpdateInput, caller identity.AccountID) (*domain.Employee, error) {
	e, err := u.getOwned(ctx, account, caller)
	if err != nil {
		return nil, err
	}
	e.Name = in.Name
	e.Email = in.Email
	e.Phone = in.Phone
	e.Position = in.Position
	e.Department = in.Department
	if err := u.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (u *Usecase) UpdatePosition(ctx context.Context, account identity.AccountID, position, department string, caller identity.AccountID) (*domain.Employee, error) {
	e, err := u.getOwned(ctx, account, caller)
	if err != nil {
		return nil, err
	}
	e.Position = position
	e.Department = department
	if err := u.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Deactivate ends the employment record; the end date is stamped from the
// clock. The record itself is kept for history.
func (u *Usecase) Deactivate(ctx context.Context, account identity.AccountID, caller identity.AccountID) (*domain.Employee, error) {
	e, err := u.getOwned(ctx, account, caller)
	if err != nil {
		return nil, err
	}
	now := u.clk.Now()
	e.IsActive = false
	e.EndDate = &now
	if err := u.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Reactivate rehires a deactivated employee and clears the end date.
func (u *Usecase) Reactivate(ctx context.Context, account identity.AccountID, caller identity.AccountID) (*domain.Employee, error) {
	e, err := u.getOwned(ctx, account, caller)
	if err != nil {
		return nil, err
	}
	e.IsActive = true
	e.EndDate = nil
	if err := u.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (u *Usecase) Get(ctx context.Context, account identity.AccountID) (*domain.Employee, error) {
	e, err := u.repo.GetByAccountID(ctx, account)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (u *Usecase) ListByEmployer(ctx context.Context, employer identity.AccountID) ([]domain.Employee, error) {
	return u.repo.ListByEmployer(ctx, employer)
}

func (u *Usecase) getOwned(ctx context.Context, account, caller identity.AccountID) (*domain.Employee, error) {
	e, err := u.Get(ctx, account)
	if err != nil {
		return nil, err
	}
	if err := identity.RequireRole(caller, e.Employer, identity.RoleEmployer); err != nil {
		return nil, err
	}
	return e, nil
}
