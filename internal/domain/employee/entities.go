package employee

import (
	"errors"
	"time"

	"streampay-backend/internal/domain/identity"
)

var ErrNotFound = errors.New("employee not found")

// Employee is an employer-maintained registry record. It exists so streams
// can be created against known staff; it carries no money.
type Employee struct {
	ID           uint64             `gorm:"primaryKey;column:id" json:"-"`
	AccountID    identity.AccountID `gorm:"size:32;uniqueIndex:ux_employees_account" json:"account_id"`
	Employer     identity.AccountID `gorm:"size:32;index:idx_employees_employer" json:"employer"`
	Name         string             `gorm:"size:255;not null" json:"name"`
	Email        string             `gorm:"size:255;not null" json:"email"`
	Phone        string             `gorm:"size:64" json:"phone"`
	Position     string             `gorm:"size:128" json:"position"`
	Department   string             `gorm:"size:128" json:"department"`
	StartDate    time.Time          `gorm:"not null" json:"start_date"`
	EndDate      *time.Time         `json:"end_date,omitempty"`
	IsActive     bool               `gorm:"not null;default:true" json:"is_active"`
	RegisteredAt time.Time          `gorm:"not null" json:"registered_at"`
	UpdatedAt    time.Time          `gorm:"autoUpdateTime" json:"-"`
}

func (Employee) TableName() string { return "employees" }
