package mysql

import (
	"context"

	employeeDomain "streampay-backend/internal/domain/employee"
	"streampay-backend/internal/domain/identity"

	"gorm.io/gorm"
)

type EmployeeRepository struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository { return &EmployeeRepository{db: db} }

func (r *EmployeeRepository) Create(ctx context.Context, e *employeeDomain.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EmployeeRepository) Save(ctx context.Context, e *employeeDomain.Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EmployeeRepository) GetByAccountID(ctx context.Context, account identity.AccountID) (*employeeDomain.Employee, error) {
	var out employeeDomain.Employee
	res := r.db.WithContext(ctx).Where("account_id = ?", account).First(&out)
	return &out, res.Error
}

func (r *EmployeeRepository) ListByEmployer(ctx context.Context, employer identity.AccountID) ([]employeeDomain.Employee, error) {
	var out []employeeDomain.Employee
	res := r.db.WithContext(ctx).Where("employer = ?", employer).Order("id ASC").Find(&out)
	return out, res.Error
}
