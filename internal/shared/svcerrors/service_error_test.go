package svcerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("STATS_1000", "invalid machineId/start/end", nil),
			wantErr: NewInvalidArgumentError("STATS_1000", "invalid machineId/start/end", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("ING_9000", nil)),
			wantErr: NewInternalError("ING_9000", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped NotFound",
			err:     fmt.Errorf("wrap: %w", NewNotFoundError("EVT_1404", "event not found", nil)),
			wantErr: NewNotFoundError("EVT_1404", "event not found", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestInternalError_HidesCause(t *testing.T) {
	cause := errors.New("pq: relation \"event\" does not exist")
	svcErr := NewInternalError("ING_9000", cause)

	assert.Equal(t, "internal server error", svcErr.Message)
	assert.NotContains(t, svcErr.Error(), "relation")
	assert.ErrorIs(t, svcErr, cause)
	assert.True(t, svcErr.IsInternalError())
	assert.Equal(t, http.StatusInternalServerError, svcErr.HttpStatusCode)
}

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewInvalidArgumentError("A", "a", nil).HttpStatusCode)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("B", "b", nil).HttpStatusCode)
	assert.Equal(t, http.StatusConflict, NewResourceConflictError("C", "c", nil).HttpStatusCode)
	assert.Equal(t, http.StatusServiceUnavailable, NewUnavailableError("D", "d", nil).HttpStatusCode)
	assert.False(t, NewNotFoundError("B", "b", nil).IsInternalError())
	assert.False(t, NewUnavailableError("D", "d", nil).IsInternalError())
}
