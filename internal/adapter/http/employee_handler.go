package http

import (
	"net/http"
	"time"

	"streampay-backend/internal/domain/identity"
	"streampay-backend/internal/usecase/employee"

	"github.com/labstack/echo/v4"
)

type EmployeeHandler struct{ uc *employee.Usecase }

func NewEmployeeHandler(uc *employee.Usecase) *EmployeeHandler { return &EmployeeHandler{uc: uc} }

type registerEmployeeReq struct {
	Employer   string `json:"employer"   validate:"required,hex32"`
	AccountID  string `json:"account_id" validate:"required,hex32"`
	Name       string `json:"name"       validate:"required"`
	Email      string `json:"email"      validate:"required,email"`
	Phone      string `json:"phone"`
	Position   string `json:"position"`
	Department string `json:"department"`
	// Canonical date `YYYY-MM-DD`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
}

func (h *EmployeeHandler) Register(c echo.Context) error {
	var req registerEmployeeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	start, _ := time.Parse("2006-01-02", req.StartDate)
	e, err := h.uc.Register(c.Request().Context(), employee.RegisterInput{
		Employer:   identity.AccountID(req.Employer),
		AccountID:  identity.AccountID(req.AccountID),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
		Department: req.Department,
		StartDate:  start,
	}, callerID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *EmployeeHandler) Get(c echo.Context) error {
	account := identity.AccountID(c.Param("account_id"))
	e, err := h.uc.Get(c.Request().Context(), account)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, e)
}

type updateEmployeeReq struct {
	Name       string `json:"name"  validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	Position   string `json:"position"`
	Department string `json:"department"`
}

func (h *EmployeeHandler) Update(c echo.Context) error {
	account := identity.AccountID(c.Param("account_id"))
	var req updateEmployeeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	e, err := h.uc.Update(c.Request().Context(), account, employee.UpdateInput(req), callerID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, e)
}

type updatePositionReq struct {
	Position   string `json:"position" validate:"required"`
	Department string `json:"department"`
}

func (h *EmployeeHandler) UpdatePosition(c echo.Context) error {
	account := identity.AccountID(c.Param("account_id"))
	var req updatePositionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	e, err := h.uc.UpdatePosition(c.Request().Context(), account, req.Position, req.Department, callerID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, e)
}

func (h *EmployeeHandler) Deactivate(c echo.Context) error {
	account := identity.AccountID(c.Param("account_id"))
	e, err := h.uc.Deactivate(c.Request().Context(), account, callerID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, e)
}

func (h *EmployeeHandler) Reactivate(c echo.Context) error {
	account := identity.AccountID(c.Param("account_id"))
	e, err := h.uc.Reactivate(c.Request().Context(), account, callerID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, e)
}

func (h *EmployeeHandler) ListByEmployer(c echo.Context) error {
	employer := identity.AccountID(c.Param("account_id"))
	list, err := h.uc.ListByEmployer(c.Request().Context(), employer)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
