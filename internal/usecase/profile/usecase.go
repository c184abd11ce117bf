package profile

import (
	"context"
	"errors"

	"streampay-backend/internal/domain/identity"
	domain "streampay-backend/internal/domain/profile"

	"gorm.io/gorm"
)

// Usecase maintains work profiles and the derived risk score/tier used to
// suggest an underwriting tier to the lending side.
type Usecase struct {
	repo domain.Repository
}

func NewUsecase(repo domain.Repository) *Usecase { return &Usecase{repo: repo} }

type UpdateProfileInput struct {
	Employee           identity.AccountID `json:"employee"`
	YearsExperience    int                `json:"years_experience"`
	CurrentJobDuration int                `json:"current_job_duration_months"`
	JobChanges         int                `json:"job_changes"`
	Sector             string             `json:"sector"`
}

// Update recomputes the risk score and tier from the submitted history and
// upserts the profile. Only the employee can maintain their own profile.
func (u *Usecase) Update(ctx context.Context, in UpdateProfileInput, caller identity.AccountID) (*domain.WorkProfile, error) {
	if err := identity.RequireRole(caller, in.Employee, identity.RoleEmployee); err != nil {
		return nil, err
	}
	score := domain.Score(in.YearsExperience, in.CurrentJobDuration, in.JobChanges)
	p := &domain.WorkProfile{
		Employee:           in.Employee,
		YearsExperience:    in.YearsExperience,
		CurrentJobDuration: in.CurrentJobDuration,
		JobChanges:         in.JobChanges,
		Sector:             in.Sector,
		RiskScore:          score,
		RiskTier:           domain.TierForScore(score),
	}
	if err := u.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *Usecase) Get(ctx context.Context, employee identity.AccountID) (*domain.WorkProfile, error) {
	p, err := u.repo.GetByEmployee(ctx, employee)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}
