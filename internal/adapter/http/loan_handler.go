package http

import (
	"context"
	"net/http"

	"streampay-backend/internal/domain/identity"
	loanDomain "streampay-backend/internal/domain/loan"
	"streampay-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type requestLoanReq struct {
	Borrower           string `json:"borrower"             validate:"required,hex32"`
	Amount             int64  `json:"amount"               validate:"required,gt=0"`
	RiskTier           int    `json:"risk_tier"            validate:"required,gte=1,lte=5"`
	CollateralStreamID uint64 `json:"collateral_stream_id" validate:"required"`
}

func (h *LoanHandler) RequestLoan(c echo.Context) error {
	var req requestLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Request(c.Request().Context(), loan.RequestLoanInput{
		Borrower:           identity.AccountID(req.Borrower),
		Amount:             req.Amount,
		RiskTier:           req.RiskTier,
		CollateralStreamID: req.CollateralStreamID,
	}, callerID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	id, err := pathID(c, "loan_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListLoans serves borrowers their own loans via ?borrower=, status filters
// via ?status=, and the full book to the admin.
func (h *LoanHandler) ListLoans(c echo.Context) error {
	ctx := c.Request().Context()
	if borrower := c.QueryParam("borrower"); borrower != "" {
		dtos, err := h.uc.ListByBorrower(ctx, identity.AccountID(borrower))
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, dtos)
	}
	if status := c.QueryParam("status"); status != "" {
		st, err := loanDomain.ParseStatus(status)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status"})
		}
		dtos, err := h.uc.ListByStatus(ctx, st)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, dtos)
	}
	dtos, err := h.uc.ListAll(ctx, callerID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LoanHandler) Approve(c echo.Context) error     { return h.transition(c, h.uc.Approve) }
func (h *LoanHandler) Reject(c echo.Context) error      { return h.transition(c, h.uc.Reject) }
func (h *LoanHandler) MarkDefault(c echo.Context) error { return h.transition(c, h.uc.MarkDefault) }

func (h *LoanHandler) transition(c echo.Context, op func(ctx context.Context, id uint64, caller identity.AccountID) (*loan.LoanDTO, error)) error {
	id, err := pathID(c, "loan_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	dto, err := op(c.Request().Context(), id, callerID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type repayReq struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

func (h *LoanHandler) Repay(c echo.Context) error {
	id, err := pathID(c, "loan_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	var req repayReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Repay(c.Request().Context(), id, req.Amount, callerID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) Summary(c echo.Context) error {
	s, err := h.uc.Summary(c.Request().Context(), callerID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *LoanHandler) LoanTransactions(c echo.Context) error {
	id, err := pathID(c, "loan_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	txs, err := h.uc.Transactions(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, txs)
}

// Transactions serves the borrower's own history via ?borrower=, or the
// whole ledger to the admin.
func (h *LoanHandler) Transactions(c echo.Context) error {
	ctx := c.Request().Context()
	if borrower := c.QueryParam("borrower"); borrower != "" {
		txs, err := h.uc.BorrowerTransactions(ctx, identity.AccountID(borrower))
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, txs)
	}
	txs, err := h.uc.AllTransactions(ctx, callerID(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, txs)
}
