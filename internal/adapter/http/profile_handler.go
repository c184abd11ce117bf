package http

import (
	"net/http"

	"streampay-backend/internal/domain/identity"
	"streampay-backend/internal/usecase/profile"

	"github.com/labstack/echo/v4"
)

type ProfileHandler struct{ uc *profile.Usecase }

func NewProfileHandler(uc *profile.Usecase) *ProfileHandler { return &ProfileHandler{uc: uc} }

type updateProfileReq struct {
	Employee           string `json:"employee"                    validate:"required,hex32"`
	YearsExperience    int    `json:"years_experience"            validate:"gte=0,lte=60"`
	CurrentJobDuration int    `json:"current_job_duration_months" validate:"gte=0,lte=720"`
	JobChanges         int    `json:"job_changes"                 validate:"gte=0,lte=100"`
	Sector             string `json:"sector"`
}

func (h *ProfileHandler) Update(c echo.Context) error {
	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	p, err := h.uc.Update(c.Request().Context(), profile.UpdateProfileInput{
		Employee:           identity.AccountID(req.Employee),
		YearsExperience:    req.YearsExperience,
		CurrentJobDuration: req.CurrentJobDuration,
		JobChanges:         req.JobChanges,
		Sector:             req.Sector,
	}, callerID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) Get(c echo.Context) error {
	account := identity.AccountID(c.Param("account_id"))
	p, err := h.uc.Get(c.Request().Context(), account)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
