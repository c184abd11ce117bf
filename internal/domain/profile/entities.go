package profile

import (
	"errors"
	"time"

	"streampay-backend/internal/domain/identity"
)

var ErrNotFound = errors.New("work profile not found")

// WorkProfile is an employee-maintained work history used to derive a risk
// score and a suggested underwriting tier. The derived fields are recomputed
// on every update, never accepted from the caller.
type WorkProfile struct {
	ID                 uint64             `gorm:"primaryKey;column:id" json:"-"`
	Employee           identity.AccountID `gorm:"size:32;uniqueIndex:ux_profiles_employee" json:"employee"`
	YearsExperience    int                `gorm:"not null" json:"years_experience"`
	CurrentJobDuration int                `gorm:"not null" json:"current_job_duration_months"`
	JobChanges         int                `gorm:"not null" json:"job_changes"`
	Sector             string             `gorm:"size:128" json:"sector"`
	RiskScore          int                `gorm:"not null" json:"risk_score"`
	RiskTier           int                `gorm:"not null" json:"risk_tier"`
	UpdatedAt          time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WorkProfile) TableName() string { return "work_profiles" }

// Score computes the 0-100 risk score from work history. Higher is safer.
func Score(yearsExperience, currentJobDurationMonths, jobChanges int) int {
	score := 50

	switch {
	case yearsExperience >= 8:
		score += 40
	case yearsExperience >= 5:
		score += 30
	case yearsExperience >= 3:
		score += 20
	case yearsExperience >= 1:
		score += 10
	}

	switch {
	case currentJobDurationMonths >= 24:
		score += 30
	case currentJobDurationMonths >= 12:
		score += 20
	case currentJobDurationMonths >= 6:
		score += 10
	}

	switch {
	case jobChanges <= 1:
		score += 20
	case jobChanges <= 2:
		score += 10
	case jobChanges <= 3:
		score += 5
	default:
		score -= (jobChanges - 3) * 5
	}

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// TierForScore maps a risk score to an underwriting tier (1 safest).
func TierForScore(score int) int {
	switch {
	case score >= 80:
		return 1
	case score >= 65:
		return 2
	case score >= 50:
		return 3
	case score >= 35:
		return 4
	default:
		return 5
	}
}
