package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_IsMatchesSentinels(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"not found", apperrors.NewNotFoundError("building not found"), apperrors.ErrNotFound},
		{"validation", apperrors.NewValidationFailedError("bad month"), apperrors.ErrValidation},
		{"conflict", apperrors.NewConflictError("lease overlaps"), apperrors.ErrDuplicate},
		{"forbidden", apperrors.NewForbiddenError("admin only"), apperrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("service: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.target)
		})
	}
}

func TestAppError_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.NewAppError(500, "failed to list buildings", cause)

	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "failed to list buildings: connection reset", err.Error())
}
