package change_booking_status

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TravelBooking/internal/service/bookings"
	"github.com/m04kA/SMC-TravelBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-TravelBooking/pkg/logger"
)

type fakeService struct {
	gotID  string
	gotReq *models.ChangeStatusRequest
	err    error
}

func (f *fakeService) ChangeStatus(_ context.Context, id string, req *models.ChangeStatusRequest) (*models.BookingResponse, error) {
	f.gotID, f.gotReq = id, req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{ID: id, Status: req.Status}, nil
}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/b-1/status", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"bookingId": "b-1"})
	req = req.WithContext(middleware.WithUserID(req.Context(), "u-1"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())

	rec := doRequest(h, `{"status":"cancelled"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "b-1", svc.gotID)
	assert.Equal(t, "u-1", svc.gotReq.UserID)
	assert.Equal(t, "cancelled", svc.gotReq.Status)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid status", bookings.ErrInvalidInput, http.StatusBadRequest},
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"access denied", bookings.ErrAccessDenied, http.StatusForbidden},
		{"transition", bookings.ErrInvalidTransition, http.StatusConflict},
		{"persistence", bookings.ErrPersistence, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.NewNop())
			assert.Equal(t, tt.code, doRequest(h, `{"status":"confirmed"}`).Code)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&fakeService{}, logger.NewNop())
	assert.Equal(t, http.StatusBadRequest, doRequest(h, `status=confirmed`).Code)
}
