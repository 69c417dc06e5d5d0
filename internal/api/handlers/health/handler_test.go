package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelBooking/pkg/logger"
)

func ok(context.Context) error { return nil }

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		checks     map[string]Check
		wantCode   int
		wantStatus string
	}{
		{"no checks", nil, http.StatusOK, statusOK},
		{"all healthy", map[string]Check{"postgres": ok, "mongo": ok}, http.StatusOK, statusOK},
		{
			name: "mongo down",
			checks: map[string]Check{
				"postgres": ok,
				"mongo":    func(context.Context) error { return errors.New("server selection timeout") },
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: statusDegraded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(tt.checks, logger.NewNop())
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

			require.Equal(t, tt.wantCode, rec.Code)
			var got Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}
