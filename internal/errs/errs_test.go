package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("connection refused")
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("customer is required"), KindValidation},
		{"storage", Storage("failed to create ticket", cause), KindStorage},
		{"wrapped not found", fmt.Errorf("report: %w", ErrNoReportData), KindNotFound},
		{"unauthorized", ErrInvalidCredentials, KindUnauthorized},
		{"plain error", cause, KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(KindValidation))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(KindStorage))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(KindNotFound))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(KindUnauthorized))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(KindInternal))
}

func TestStorageKeepsCause(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := Storage("failed to create lead", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk I/O error")
	assert.Equal(t, "failed to create lead", PublicMessage(err))
}

func TestIsMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("monthly: %w", NotFound("No data available for report generation"))
	assert.True(t, errors.Is(err, ErrNoReportData))
	assert.False(t, errors.Is(err, ErrInvalidCredentials))
	assert.Equal(t, "internal error", PublicMessage(errors.New("boom")))
}
