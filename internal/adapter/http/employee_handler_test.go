package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	employeeDomain "streampay-backend/internal/domain/employee"
	"streampay-backend/internal/domain/identity"
	uc "streampay-backend/internal/usecase/employee"
	"streampay-backend/pkg/clock"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// map-backed employee.Repository
type employeeMemRepo struct {
	byAccount map[identity.AccountID]employeeDomain.Employee
	nextID    uint64
}

func newEmployeeMemRepo() *employeeMemRepo {
	return &employeeMemRepo{byAccount: map[identity.AccountID]employeeDomain.Employee{}, nextID: 1}
}

func (m *employeeMemRepo) Create(ctx context.Context, e *employeeDomain.Employee) error {
	e.ID = m.nextID
	m.nextID++
	m.byAccount[e.AccountID] = *e
	return nil
}

func (m *employeeMemRepo) GetByAccountID(ctx context.Context, account identity.AccountID) (*employeeDomain.Employee, error) {
	e, ok := m.byAccount[account]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (m *employeeMemRepo) Save(ctx context.Context, e *employeeDomain.Employee) error {
	m.byAccount[e.AccountID] = *e
	return nil
}

func (m *employeeMemRepo) ListByEmployer(ctx context.Context, employer identity.AccountID) ([]employeeDomain.Employee, error) {
	var out []employeeDomain.Employee
	for _, e := range m.byAccount {
		if e.Employer == employer {
			out = append(out, e)
		}
	}
	return out, nil
}

func newEmployeeHandler() (*EmployeeHandler, *employeeMemRepo) {
	repo := newEmployeeMemRepo()
	return NewEmployeeHandler(uc.NewUsecase(repo, clock.Fixed(hNow))), repo
}

func registerBody() map[string]any {
	return map[string]any{
		"employer":   hEmployer,
		"account_id": hEmployee,
		"name":       "Ada",
		"email":      "ada@example.com",
		"position":   "Engineer",
		"start_date": "2025-01-15",
	}
}

func TestRegisterEmployee_Success(t *testing.T) {
	e := newEchoWithValidator()
	h, repo := newEmployeeHandler()

	req := httptest.NewRequest(stdhttp.MethodPost, "/employees", mustJSON(registerBody()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(HeaderAccountID, hEmployer)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	stored, err := repo.GetByAccountID(context.Background(), identity.AccountID(hEmployee))
	if err != nil {
		t.Fatalf("not stored: %v", err)
	}
	if stored.Name != "Ada" || !stored.IsActive || !stored.RegisteredAt.Equal(hNow) {
		t.Fatalf("unexpected record: %+v", stored)
	}
}

func TestRegisterEmployee_DuplicateConflict(t *testing.T) {
	e := newEchoWithValidator()
	h, _ := newEmployeeHandler()

	for i, want := range []int{stdhttp.StatusCreated, stdhttp.StatusConflict} {
		req := httptest.NewRequest(stdhttp.MethodPost, "/employees", mustJSON(registerBody()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(HeaderAccountID, hEmployer)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := h.Register(c); err != nil {
			t.Fatalf("Register #%d error: %v", i, err)
		}
		if rec.Code != want {
			t.Fatalf("Register #%d status = %d, want %d: %s", i, rec.Code, want, rec.Body.String())
		}
	}
}

func TestRegisterEmployee_BadDate(t *testing.T) {
	e := newEchoWithValidator()
	h, _ := newEmployeeHandler()

	body := registerBody()
	body["start_date"] = "15/01/2025"
	req := httptest.NewRequest(stdhttp.MethodPost, "/employees", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(HeaderAccountID, hEmployer)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestDeactivateEmployee_OwnershipEnforced(t *testing.T) {
	e := newEchoWithValidator()
	h, repo := newEmployeeHandler()

	req := httptest.NewRequest(stdhttp.MethodPost, "/employees", mustJSON(registerBody()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(HeaderAccountID, hEmployer)
	rec := httptest.NewRecorder()
	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	// someone else's employer account cannot deactivate
	req = httptest.NewRequest(stdhttp.MethodPost, "/employees/"+hEmployee+"/deactivate", nil)
	req.Header.Set(HeaderAccountID, hEmployee)
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("account_id")
	c.SetParamValues(hEmployee)
	if err := h.Deactivate(c); err != nil {
		t.Fatalf("Deactivate error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("foreign caller status = %d, want 403", rec.Code)
	}

	req = httptest.NewRequest(stdhttp.MethodPost, "/employees/"+hEmployee+"/deactivate", nil)
	req.Header.Set(HeaderAccountID, hEmployer)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("account_id")
	c.SetParamValues(hEmployee)
	if err := h.Deactivate(c); err != nil {
		t.Fatalf("Deactivate error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("owner status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	stored, _ := repo.GetByAccountID(context.Background(), identity.AccountID(hEmployee))
	if stored.IsActive || stored.EndDate == nil {
		t.Fatalf("not deactivated: %+v", stored)
	}
}

func TestGetEmployee_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	h, _ := newEmployeeHandler()

	req := httptest.NewRequest(stdhttp.MethodGet, "/employees/"+hEmployee, nil)
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

func TestListEmployeesByEmployer(t *testing.T) {
	e := newEchoWithValidator()
	h, _ := newEmployeeHandler()

	req := httptest.NewRequest(stdhttp.MethodPost, "/employees", mustJSON(registerBody()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(HeaderAccountID, hEmployer)
	if err := h.Register(e.NewContext(req, httptest.NewRecorder())); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	req = httptest.NewRequest(stdhttp.MethodGet, "/employers/"+hEmployer+"/employees", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("account_id")
	c.SetParamValues(hEmployer)
	if err := h.ListByEmployer(c); err != nil {
		t.Fatalf("ListByEmployer error: %v", err)
	}
	var got []employeeDomain.Employee
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(got) != 1 || got[0].AccountID != identity.AccountID(hEmployee) {
		t.Fatalf("unexpected list: %+v", got)
	}
}
