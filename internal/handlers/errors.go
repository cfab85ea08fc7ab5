package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// toAppError maps service errors onto HTTP statuses. Client-side failures keep
// their message; anything else gets the generic fallback.
func toAppError(err error, fallback string) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return apperrors.NewAppError(http.StatusBadRequest, userMessage(err, apperrors.ErrValidation), err)
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NewAppError(http.StatusNotFound, userMessage(err, apperrors.ErrNotFound), err)
	case errors.Is(err, apperrors.ErrDuplicate):
		return apperrors.NewAppError(http.StatusConflict, userMessage(err, apperrors.ErrDuplicate), err)
	case errors.Is(err, apperrors.ErrConflict):
		return apperrors.NewAppError(http.StatusConflict, userMessage(err, apperrors.ErrConflict), err)
	default:
		return apperrors.NewAppError(http.StatusInternalServerError, fallback, err)
	}
}

// userMessage drops the sentinel prefix so "validation error: X" reads as "X".
func userMessage(err, sentinel error) string {
	msg := err.Error()
	if trimmed := strings.TrimPrefix(msg, sentinel.Error()+": "); trimmed != "" {
		return trimmed
	}
	return msg
}

func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	appErr := toAppError(err, fallback)
	if appErr.Code >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.Int("status", appErr.Code), slog.String("error", err.Error()))
	}
	c.JSON(appErr.Code, gin.H{"error": appErr.Message})
}

func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
