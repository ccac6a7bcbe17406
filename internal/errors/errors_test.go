package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "validation keeps detail",
			err:        Validation("title is required"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
			wantMsg:    "validation failed: title is required",
		},
		{
			name:       "invalid credentials",
			err:        ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIALS",
			wantMsg:    "invalid credentials",
		},
		{
			name:       "wrapped unauthorized is uniform",
			err:        fmt.Errorf("%w: token expired", ErrUnauthorized),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
			wantMsg:    "invalid or missing token",
		},
		{
			name:       "conflict",
			err:        fmt.Errorf("register: %w", ErrConflict),
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
			wantMsg:    "username or email already exists",
		},
		{
			name:       "not found",
			err:        fmt.Errorf("get task: %w", ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantMsg:    "record not found",
		},
		{
			name:       "store error hides cause",
			err:        Store("list tasks", errors.New("dial tcp 10.0.0.1:3306: connection refused")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantMsg:    "internal server error",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.Code)
			assert.Equal(t, tt.wantMsg, httpErr.Message)
			assert.Equal(t, ErrorResponse{Error: tt.wantMsg, Code: tt.wantCode}, httpErr.ToErrorResponse())
		})
	}
}

func TestStoreWrapsSentinel(t *testing.T) {
	err := Store("delete note", errors.New("deadlock"))
	assert.ErrorIs(t, err, ErrStore)
	assert.Contains(t, err.Error(), "delete note")
}
