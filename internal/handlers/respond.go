package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Yeizermarrugo/BankSystem/internal/apperrors"
	"github.com/Yeizermarrugo/BankSystem/internal/dto"
	"github.com/Yeizermarrugo/BankSystem/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondSuccess writes a single-entity success envelope.
func respondSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.NewSuccessEnvelope(status, message, data))
}

// respondList writes a list success envelope with its item count.
func respondList(c *gin.Context, status int, message string, items int, data any) {
	c.JSON(status, dto.NewListEnvelope(status, message, items, data))
}

// respondError writes a failure envelope.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.NewErrorEnvelope(status, message))
}

// respondBindingError writes a 400 envelope, extracting per-field messages
// when the failure came from request validation.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = "failed on '" + fe.Tag() + "' validation"
		}
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorEnvelope(http.StatusBadRequest, "Invalid request body", fields))
		return
	}
	respondError(c, http.StatusBadRequest, "Invalid request body")
}

// respondServiceError maps service-layer errors onto HTTP statuses. The
// taxonomy is closed: anything outside the known sentinels is a 500 with a
// generic message so internals never leak.
func respondServiceError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromContext(c)

	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrInvalidAmount),
		errors.Is(err, apperrors.ErrInvalidTransfer),
		errors.Is(err, apperrors.ErrSameAccountTransfer),
		errors.Is(err, apperrors.ErrValidation):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		respondError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, apperrors.ErrUnauthorized):
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, apperrors.ErrForbidden):
		respondError(c, http.StatusForbidden, "Forbidden")
	case errors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrDuplicate):
		respondError(c, http.StatusConflict, err.Error())
	case errors.As(err, &appErr):
		if appErr.Code >= 500 {
			logger.Error("Service error", slog.String("error", err.Error()))
			respondError(c, appErr.Code, "Internal server error")
			return
		}
		respondError(c, appErr.Code, appErr.Message)
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// requireUserID pulls the authenticated user from the context, aborting with
// a 401 envelope when absent.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromContext(c).Error("User ID not found in context")
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return userID, true
}
