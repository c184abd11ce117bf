package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"streampay-backend/internal/domain/identity"
	profileDomain "streampay-backend/internal/domain/profile"
	uc "streampay-backend/internal/usecase/profile"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// map-backed profile.Repository
type profileMemRepo struct {
	byEmployee map[identity.AccountID]profileDomain.WorkProfile
	nextID     uint64
}

func newProfileMemRepo() *profileMemRepo {
	return &profileMemRepo{byEmployee: map[identity.AccountID]profileDomain.WorkProfile{}, nextID: 1}
}

func (m *profileMemRepo) Upsert(ctx context.Context, p *profileDomain.WorkProfile) error {
	if cur, ok := m.byEmployee[p.Employee]; ok {
		p.ID = cur.ID
	} else {
		p.ID = m.nextID
		m.nextID++
	}
	m.byEmployee[p.Employee] = *p
	return nil
}

func (m *profileMemRepo) GetByEmployee(ctx context.Context, employee identity.AccountID) (*profileDomain.WorkProfile, error) {
	p, ok := m.byEmployee[employee]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func newProfileHandler() (*ProfileHandler, *profileMemRepo) {
	repo := newProfileMemRepo()
	return NewProfileHandler(uc.NewUsecase(repo)), repo
}

func TestUpdateProfile_DerivesScoreAndTier(t *testing.T) {
	e := newEchoWithValidator()
	h, repo := newProfileHandler()

	body := map[string]any{
		"employee":                    hEmployee,
		"years_experience":            9,
		"current_job_duration_months": 30,
		"job_changes":                 1,
		"sector":                      "fintech",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/profiles", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(HeaderAccountID, hEmployee)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Update(c); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var got profileDomain.WorkProfile
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.RiskScore != 100 || got.RiskTier != 1 {
		t.Fatalf("score/tier = %d/%d, want 100/1", got.RiskScore, got.RiskTier)
	}
	stored, err := repo.GetByEmployee(context.Background(), identity.AccountID(hEmployee))
	if err != nil || stored.Sector != "fintech" {
		t.Fatalf("not stored: %+v (err %v)", stored, err)
	}
}

func TestUpdateProfile_SelfOnly(t *testing.T) {
	e := newEchoWithValidator()
	h, _ := newProfileHandler()

	body := map[string]any{
		"employee":         hEmployee,
		"years_experience": 2,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/profiles", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(HeaderAccountID, hEmployer) // not the employee
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Update(c); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	h, _ := newProfileHandler()

	req := httptest.NewRequest(stdhttp.MethodGet, "/profiles/"+hEmployee, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("account_id")
	c.SetParamValues(hEmployee)
	if err := h.Get(c); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
