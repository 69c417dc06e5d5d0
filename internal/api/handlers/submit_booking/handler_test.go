package submit_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TravelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	submitBooking "github.com/m04kA/SMC-TravelBooking/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-TravelBooking/pkg/logger"
)

type fakeUseCase struct {
	gotReq *submitBooking.Request
	resp   *submitBooking.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *submitBooking.Request) (*submitBooking.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

const validBody = `{
	"name": "Ana Gomez",
	"email": "ana@example.com",
	"phone": "+54 9 11 5555-0000",
	"travelerCount": 4,
	"childCount": 1,
	"childrenAges": "7",
	"departureDate": "2025-10-15"
}`

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/b-1/submit", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"bookingId": "b-1"})
	req = req.WithContext(middleware.WithUserID(req.Context(), "u-1"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Submitted(t *testing.T) {
	uc := &fakeUseCase{resp: &submitBooking.Response{
		BookingID:   "b-1",
		Status:      domain.StatusConfirmed,
		TotalPrice:  960,
		ShareToken:  "tok-1",
		ShareURL:    "https://travel.example.com/join/tok-1",
		TokenMinted: true,
	}}
	h := NewHandler(uc, logger.NewNop())

	rec := doRequest(h, validBody)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "b-1", uc.gotReq.BookingID)
	assert.Equal(t, "u-1", uc.gotReq.UserID)
	assert.Equal(t, 4, uc.gotReq.Form.TravelerCount)
	assert.Equal(t, time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC), uc.gotReq.Form.DepartureDate)
	assert.Nil(t, uc.gotReq.Form.ReturnDate)

	var got SubmitBookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "confirmed", got.Status)
	assert.Equal(t, 960.0, got.TotalPrice)
	assert.Equal(t, "https://travel.example.com/join/tok-1", got.ShareURL)
	assert.True(t, got.TokenMinted)
}

func TestHandle_ValidationFields(t *testing.T) {
	verr := domain.NewValidationError()
	verr.Add("departureDate", "departure date is required")
	h := NewHandler(&fakeUseCase{err: fmt.Errorf("%w: %w", submitBooking.ErrInvalidInput, verr)}, logger.NewNop())

	rec := doRequest(h, validBody)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "departure date is required", body.Fields["departureDate"])
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid input", submitBooking.ErrInvalidInput, http.StatusBadRequest},
		{"not found", submitBooking.ErrBookingNotFound, http.StatusNotFound},
		{"access denied", submitBooking.ErrAccessDenied, http.StatusForbidden},
		{"price unavailable", submitBooking.ErrPriceUnavailable, http.StatusUnprocessableEntity},
		{"final status", submitBooking.ErrInvalidTransition, http.StatusConflict},
		{"persistence", submitBooking.ErrPersistence, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())
			assert.Equal(t, tt.code, doRequest(h, validBody).Code)
		})
	}
}

func TestHandle_BadDates(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := doRequest(h, `{"departureDate":"15/10/2025","returnDate":"tomorrow"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)

	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Contains(t, body.Fields, "departureDate")
	assert.Contains(t, body.Fields, "returnDate")
}

func TestHandle_TrimsContactFields(t *testing.T) {
	uc := &fakeUseCase{resp: &submitBooking.Response{BookingID: "b-1", Status: domain.StatusConfirmed}}
	h := NewHandler(uc, logger.NewNop())

	rec := doRequest(h, `{
		"name": "  Ana Gomez ",
		"email": " ana@example.com\t",
		"phone": " +54 9 11 5555-0000 ",
		"travelerCount": 2,
		"departureDate": "2025-10-15"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "Ana Gomez", uc.gotReq.Form.Name)
	assert.Equal(t, "ana@example.com", uc.gotReq.Form.Email)
	assert.Equal(t, "+54 9 11 5555-0000", uc.gotReq.Form.Phone)
}
