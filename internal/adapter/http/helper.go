package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	employeeDomain "streampay-backend/internal/domain/employee"
	"streampay-backend/internal/domain/identity"
	loanDomain "streampay-backend/internal/domain/loan"
	profileDomain "streampay-backend/internal/domain/profile"
	"streampay-backend/internal/domain/risktier"
	streamDomain "streampay-backend/internal/domain/stream"
	employeeUC "streampay-backend/internal/usecase/employee"

	"github.com/labstack/echo/v4"
)

// HeaderAccountID carries the caller's account identity. There is no auth
// layer in front of this service; the gateway is trusted to set it.
const HeaderAccountID = "Ax-Account-Id"

func callerID(c echo.Context) identity.AccountID {
	return identity.AccountID(strings.TrimSpace(c.Request().Header.Get(HeaderAccountID)))
}

func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

// domainStatus maps ledger errors onto HTTP codes. Unknown errors fall
// through to 500.
func domainStatus(err error) int {
	switch {
	case errors.Is(err, streamDomain.ErrNotFound),
		errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, employeeDomain.ErrNotFound),
		errors.Is(err, profileDomain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, identity.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, loanDomain.ErrInvalidState),
		errors.Is(err, loanDomain.ErrOutstandingLoan),
		errors.Is(err, streamDomain.ErrNotActive),
		errors.Is(err, streamDomain.ErrPaused),
		errors.Is(err, streamDomain.ErrNotPaused),
		errors.Is(err, employeeUC.ErrAlreadyRegistered):
		return http.StatusConflict
	case errors.Is(err, streamDomain.ErrInvalidAmount),
		errors.Is(err, streamDomain.ErrInvalidDuration),
		errors.Is(err, streamDomain.ErrInsufficientAvailable),
		errors.Is(err, loanDomain.ErrInvalidAmount),
		errors.Is(err, loanDomain.ErrCollateralInsufficient),
		errors.Is(err, loanDomain.ErrOverRepayment),
		errors.Is(err, risktier.ErrUnknownTier):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func jsonError(c echo.Context, err error) error {
	code := domainStatus(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}
