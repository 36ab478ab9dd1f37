package handlers

import (
	"errors"
	"net/http"

	"crane_fmv/internal/domain"
	"crane_fmv/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errMissingAccount = pkg.NewDomainErrorSimple("MISSING_ACCOUNT", "X-Account-ID header is required", http.StatusUnauthorized)
)

// mapReportError translates lifecycle errors into the public error envelope.
func mapReportError(err error) *pkg.AppError {
	var verr *domain.ValidationError
	var serr *domain.InvalidStateError

	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_FAILED", "One or more fields are invalid", err, http.StatusUnprocessableEntity).
			WithDetails(verr.Issues)
	case errors.Is(err, domain.ErrValidation):
		return pkg.NewDomainError("VALIDATION_FAILED", "One or more fields are invalid", err, http.StatusUnprocessableEntity)
	case errors.As(err, &serr):
		return pkg.NewDomainError("INVALID_STATE", "Operation not allowed in the current report status", err, http.StatusConflict).
			WithDetails(gin.H{"operation": serr.Operation, "expected": serr.Expected, "actual": serr.Actual})
	case errors.Is(err, domain.ErrNotFound):
		return pkg.NewDomainError("REPORT_NOT_FOUND", "Report not found", err, http.StatusNotFound)
	case errors.Is(err, domain.ErrForbidden):
		return pkg.NewDomainError("FORBIDDEN", "Caller may not perform this operation", err, http.StatusForbidden)
	case errors.Is(err, domain.ErrPaymentRejected):
		var perr *domain.PaymentRejectedError
		appErr := pkg.NewDomainError("PAYMENT_REJECTED", "Payment was rejected", err, http.StatusPaymentRequired)
		if errors.As(err, &perr) {
			appErr = appErr.WithDetails(gin.H{"reason": perr.Reason})
		}
		return appErr
	case errors.Is(err, domain.ErrPaymentGateUnavailable):
		return pkg.NewDomainError("PAYMENT_GATE_UNAVAILABLE", "Payment provider unavailable, retry later", err, http.StatusBadGateway)
	case errors.Is(err, domain.ErrValuation):
		return pkg.NewDomainError("VALUATION_FAILED", "Valuation could not be completed, retry later", err, http.StatusServiceUnavailable)
	case errors.Is(err, domain.ErrGeneration):
		return pkg.NewDomainError("GENERATION_FAILED", "Report document could not be generated, retry later", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWithError(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
