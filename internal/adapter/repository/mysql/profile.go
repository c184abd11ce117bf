package mysql

import (
	"context"

	"streampay-backend/internal/domain/identity"
	profileDomain "streampay-backend/internal/domain/profile"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct{ db *gorm.DB }

func NewProfileRepository(db *gorm.DB) *ProfileRepository { return &ProfileRepository{db: db} }

// Upsert inserts or replaces the employee's profile in one statement, keyed
// on the unique employee column.
func (r *ProfileRepository) Upsert(ctx context.Context, p *profileDomain.WorkProfile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "employee"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"years_experience", "current_job_duration", "job_changes",
			"sector", "risk_score", "risk_tier", "updated_at",
		}),
	}).Create(p).Error
}

func (r *ProfileRepository) GetByEmployee(ctx context.Context, employee identity.AccountID) (*profileDomain.WorkProfile, error) {
	var out profileDomain.WorkProfile
	res := r.db.WithContext(ctx).Where("employee = ?", employee).First(&out)
	return &out, res.Error
}
