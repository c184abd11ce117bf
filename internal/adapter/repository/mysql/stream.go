package mysql

import (
	"context"

	"streampay-backend/internal/domain/identity"
	streamDomain "streampay-backend/internal/domain/stream"

	"gorm.io/gorm"
)

type StreamRepository struct{ db *gorm.DB }

func NewStreamRepository(db *gorm.DB) *StreamRepository { return &StreamRepository{db: db} }

func (r *StreamRepository) Create(ctx context.Context, s *streamDomain.Stream) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StreamRepository) Save(ctx context.Context, s *streamDomain.Stream) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *StreamRepository) GetByID(ctx context.Context, id uint64) (*streamDomain.Stream, error) {
	var out streamDomain.Stream
	res := r.db.WithContext(ctx).First(&out, "id = ?", id)
	return &out, res.Error
}

// GetByIDForUpdate locks the stream row for the duration of the surrounding tx.
func (r *StreamRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*streamDomain.Stream, error) {
	var out streamDomain.Stream
	res := forUpdate(r.db.WithContext(ctx)).First(&out, "id = ?", id)
	return &out, res.Error
}

func (r *StreamRepository) ListAll(ctx context.Context) ([]streamDomain.Stream, error) {
	var out []streamDomain.Stream
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *StreamRepository) ListByEmployee(ctx context.Context, employee identity.AccountID) ([]streamDomain.Stream, error) {
	var out []streamDomain.Stream
	res := r.db.WithContext(ctx).Where("employee = ?", employee).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *StreamRepository) ListByEmployer(ctx context.Context, employer identity.AccountID) ([]streamDomain.Stream, error) {
	var out []streamDomain.Stream
	res := r.db.WithContext(ctx).Where("employer = ?", employer).Order("id ASC").Find(&out)
	return out, res.Error
}
