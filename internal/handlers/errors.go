package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/backoffice_governance/internal/apperrors"
	"github.com/SscSPs/backoffice_governance/internal/dto"
	"github.com/SscSPs/backoffice_governance/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Codes for failures that carry no structured governance error.
const (
	codeValidation   = "VALIDATION_ERROR"
	codeNotFound     = "NOT_FOUND"
	codeForbidden    = "FORBIDDEN"
	codeUnauthorized = "UNAUTHORIZED"
	codeConflict     = "CONCURRENCY_CONFLICT"
	codeInternal     = "INTERNAL_ERROR"
)

// statusFor maps an error to its HTTP status and stable error code.
func statusFor(err error) (int, string) {
	code := ""
	if coded, ok := apperrors.AsCoded(err); ok {
		code = coded.Code()
	}

	switch {
	case errors.Is(err, apperrors.ErrAccessDenied),
		errors.Is(err, apperrors.ErrSoDViolation):
		return http.StatusForbidden, code
	case errors.Is(err, apperrors.ErrPeriodNotOpen),
		errors.Is(err, apperrors.ErrInvalidTransition):
		return http.StatusConflict, code
	case errors.Is(err, apperrors.ErrUnbalancedEntry),
		errors.Is(err, apperrors.ErrMissingDimension),
		errors.Is(err, apperrors.ErrTaxIntegrityViolation),
		errors.Is(err, apperrors.ErrAccountNotPostable):
		return http.StatusUnprocessableEntity, code
	case errors.Is(err, apperrors.ErrConcurrencyConflict):
		return http.StatusConflict, codeConflict
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusUnprocessableEntity, codeValidation
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, codeForbidden
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, codeUnauthorized
	}
	return http.StatusInternalServerError, codeInternal
}

// respondError writes the error body for err. Infrastructure failures are
// logged and their message is not echoed to the caller.
func respondError(c *gin.Context, err error) {
	status, code := statusFor(err)
	body := dto.ErrorResponse{Error: err.Error(), Code: code}
	if coded, ok := apperrors.AsCoded(err); ok {
		body.Details = coded.Details()
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("error", err.Error()))
		body.Error = "Internal server error"
	} else {
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("code", code), slog.String("error", err.Error()))
	}
	c.JSON(status, body)
}

// respondBindError answers a request whose body or query failed binding.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error(), Code: codeValidation})
}

// principal returns the authenticated user and tenant, answering 401 when absent.
func principal(c *gin.Context) (userID, tenantID string, ok bool) {
	userID, okUser := middleware.GetUserIDFromContext(c)
	tenantID, okTenant := middleware.GetTenantIDFromContext(c)
	if !okUser || !okTenant {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized", Code: codeUnauthorized})
		return "", "", false
	}
	return userID, tenantID, true
}
