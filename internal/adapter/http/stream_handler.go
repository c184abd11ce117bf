package http

import (
	"context"
	"net/http"

	"streampay-backend/internal/domain/identity"
	"streampay-backend/internal/usecase/stream"

	"github.com/labstack/echo/v4"
)

type StreamHandler struct{ uc *stream.Usecase }

func NewStreamHandler(uc *stream.Usecase) *StreamHandler { return &StreamHandler{uc: uc} }

type createStreamReq struct {
	Employer        string `json:"employer"         validate:"required,hex32"`
	Employee        string `json:"employee"         validate:"required,hex32"`
	TotalAmount     int64  `json:"total_amount"     validate:"required,gt=0"`
	DurationSeconds int64  `json:"duration_seconds" validate:"required,gt=0"`
}

func (h *StreamHandler) CreateStream(c echo.Context) error {
	var req createStreamReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), stream.CreateStreamInput{
		Employer:        identity.AccountID(req.Employer),
		Employee:        identity.AccountID(req.Employee),
		TotalAmount:     req.TotalAmount,
		DurationSeconds: req.DurationSeconds,
	}, callerID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *StreamHandler) GetStream(c echo.Context) error {
	id, err := pathID(c, "stream_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid stream_id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *StreamHandler) GetAvailable(c echo.Context) error {
	id, err := pathID(c, "stream_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid stream_id"})
	}
	amount, err := h.uc.GetAvailable(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"stream_id": id, "available_amount": amount})
}

type withdrawReq struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

func (h *StreamHandler) Withdraw(c echo.Context) error {
	id, err := pathID(c, "stream_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid stream_id"})
	}
	var req withdrawReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Withdraw(c.Request().Context(), id, req.Amount, callerID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *StreamHandler) Pause(c echo.Context) error  { return h.lifecycle(c, h.uc.Pause) }
func (h *StreamHandler) Resume(c echo.Context) error { return h.lifecycle(c, h.uc.Resume) }
func (h *StreamHandler) End(c echo.Context) error    { return h.lifecycle(c, h.uc.End) }

func (h *StreamHandler) lifecycle(c echo.Context, op func(ctx context.Context, id uint64, caller identity.AccountID) (*stream.StreamDTO, error)) error {
	id, err := pathID(c, "stream_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid stream_id"})
	}
	dto, err := op(c.Request().Context(), id, callerID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *StreamHandler) ListStreams(c echo.Context) error {
	dtos, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *StreamHandler) ListEmployeeStreams(c echo.Context) error {
	account := identity.AccountID(c.Param("account_id"))
	dtos, err := h.uc.ListByEmployee(c.Request().Context(), account)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *StreamHandler) ListEmployerStreams(c echo.Context) error {
	account := identity.AccountID(c.Param("account_id"))
	dtos, err := h.uc.ListByEmployer(c.Request().Context(), account)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
