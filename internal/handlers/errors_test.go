package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestToAppError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"validation", fmt.Errorf("%w: Harap pilih akun untuk setiap baris.", apperrors.ErrValidation), http.StatusBadRequest, "Harap pilih akun untuk setiap baris."},
		{"not found", fmt.Errorf("%w: draft d1", apperrors.ErrNotFound), http.StatusNotFound, "draft d1"},
		{"duplicate", fmt.Errorf("%w: code 1101000", apperrors.ErrDuplicate), http.StatusConflict, "code 1101000"},
		{"conflict", fmt.Errorf("%w: journal is already reversed", apperrors.ErrConflict), http.StatusConflict, "journal is already reversed"},
		{"wrapped conflict", fmt.Errorf("reverse: %w", apperrors.ErrConflict), http.StatusConflict, "reverse: conflict with current state"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Failed"},
		{"app error passes through", apperrors.NewAppError(http.StatusTeapot, "short and stout", nil), http.StatusTeapot, "short and stout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := toAppError(tt.err, "Failed")
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, tt.message, appErr.Message)
			assert.ErrorIs(t, appErr, tt.err)
		})
	}
}
