package upsert_rate_table

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TravelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/internal/service/ratetables"
	"github.com/m04kA/SMC-TravelBooking/internal/service/ratetables/models"
	"github.com/m04kA/SMC-TravelBooking/pkg/logger"
)

type fakeService struct {
	gotReq *models.UpsertRateTableRequest
	err    error
}

func (f *fakeService) Upsert(_ context.Context, req *models.UpsertRateTableRequest) (*models.RateTableResponse, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	resp := &models.RateTableResponse{SubjectID: req.SubjectID}
	for _, p := range req.Periods {
		resp.Periods = append(resp.Periods, models.PeriodResponse{Name: p.Name, Start: p.Start, End: p.End})
	}
	return resp, nil
}

const body = `{
	"dailyDeductible": 15,
	"shortStayThreshold": 3,
	"periods": [
		{"name": "high", "start": "12-01", "end": "02-28", "shortStayDailyRate": 120, "longStayDailyRate": 100},
		{"name": "low", "start": "03-01", "end": "11-30", "shortStayDailyRate": 90, "longStayDailyRate": 70}
	]
}`

func doRequest(h *Handler, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/rate-tables/van-1", strings.NewReader(payload))
	req = mux.SetURLVars(req, map[string]string{"subjectId": "van-1"})
	req = req.WithContext(middleware.WithUserID(req.Context(), "admin-1"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())

	rec := doRequest(h, body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin-1", svc.gotReq.UserID)
	assert.Equal(t, "van-1", svc.gotReq.SubjectID)
	assert.Equal(t, 15.0, svc.gotReq.DailyDeductible)
	require.Len(t, svc.gotReq.Periods, 2)
	assert.Equal(t, "12-01", svc.gotReq.Periods[0].Start)
}

func TestHandle_ValidationMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"overlap", fmt.Errorf("%w: %w", ratetables.ErrInvalidInput, domain.ErrRateTableOverlap), msgPeriodsOverlap},
		{"gap", fmt.Errorf("%w: %w", ratetables.ErrInvalidInput, domain.ErrRateTableGap), msgPeriodsGap},
		{"other", ratetables.ErrInvalidInput, msgInvalidRateTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.NewNop())
			rec := doRequest(h, body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			var got handlers.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.msg, got.Error)
		})
	}
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not admin", ratetables.ErrAccessDenied, http.StatusForbidden},
		{"no subject", ratetables.ErrSubjectNotFound, http.StatusNotFound},
		{"persistence", ratetables.ErrPersistence, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.NewNop())
			assert.Equal(t, tt.code, doRequest(h, body).Code)
		})
	}
}
