package userservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelBooking/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, logger.NewNop())
}

func TestClient_GetProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/users/u-1/profile", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u-1","display_name":"Ana","email":"ana@example.com"}`))
	})

	profile, err := client.GetProfile(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", profile.DisplayName)
	assert.Equal(t, "ana@example.com", profile.Email)
}

func TestClient_GetProfile_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetProfileWithGracefulDegradation(context.Background(), "u-404")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestClient_GracefulDegradation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetProfileWithGracefulDegradation(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrServiceDegraded)
}

func TestClient_InvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	_, err := client.GetProfile(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
