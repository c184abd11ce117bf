package profile

import (
	"context"
	"errors"
	"strings"
	"testing"

	"streampay-backend/internal/domain/identity"
	domain "streampay-backend/internal/domain/profile"

	"gorm.io/gorm"
)

var worker = identity.AccountID(strings.Repeat("b", 32))

type mockRepo struct {
	byEmployee map[identity.AccountID]domain.WorkProfile
}

func (m *mockRepo) Upsert(ctx context.Context, p *domain.WorkProfile) error {
	m.byEmployee[p.Employee] = *p
	return nil
}

func (m *mockRepo) GetByEmployee(ctx context.Context, e identity.AccountID) (*domain.WorkProfile, error) {
	p, ok := m.byEmployee[e]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func newUC() (*Usecase, *mockRepo) {
	repo := &mockRepo{byEmployee: map[identity.AccountID]domain.WorkProfile{}}
	return NewUsecase(repo), repo
}

func TestUpdate_DerivesScoreAndTier(t *testing.T) {
	uc, _ := newUC()
	p, err := uc.Update(context.Background(), UpdateProfileInput{
		Employee: worker, YearsExperience: 10, CurrentJobDuration: 36, JobChanges: 0, Sector: "tech",
	}, worker)
	if err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if p.RiskScore != 100 || p.RiskTier != 1 {
		t.Fatalf("score/tier = %d/%d, want 100/1", p.RiskScore, p.RiskTier)
	}
}

func TestUpdate_SelfOnly(t *testing.T) {
	uc, _ := newUC()
	other := identity.AccountID(strings.Repeat("c", 32))
	_, err := uc.Update(context.Background(), UpdateProfileInput{Employee: worker}, other)
	if !errors.Is(err, identity.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestUpdate_OverwritesPrevious(t *testing.T) {
	uc, repo := newUC()
	ctx := context.Background()
	if _, err := uc.Update(ctx, UpdateProfileInput{Employee: worker, YearsExperience: 10, CurrentJobDuration: 36}, worker); err != nil {
		t.Fatalf("first update err: %v", err)
	}
	if _, err := uc.Update(ctx, UpdateProfileInput{Employee: worker, JobChanges: 10}, worker); err != nil {
		t.Fatalf("second update err: %v", err)
	}
	got := repo.byEmployee[worker]
	if got.RiskScore != 15 || got.RiskTier != 5 {
		t.Fatalf("score/tier = %d/%d, want 15/5 after rewrite", got.RiskScore, got.RiskTier)
	}
}

func TestGet_NotFound(t *testing.T) {
	uc, _ := newUC()
	if _, err := uc.Get(context.Background(), worker); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
