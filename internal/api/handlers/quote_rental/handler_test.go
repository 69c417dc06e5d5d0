package quote_rental

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/internal/pricing"
	quoteRental "github.com/m04kA/SMC-TravelBooking/internal/usecase/quote_rental"
	"github.com/m04kA/SMC-TravelBooking/pkg/logger"
)

type fakeUseCase struct {
	gotReq  *quoteRental.Request
	noQuote bool
	err     error
}

func (f *fakeUseCase) Execute(_ context.Context, req *quoteRental.Request) (*quoteRental.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	if f.noQuote {
		return &quoteRental.Response{SubjectID: req.SubjectID, Start: req.Start, End: req.End}, nil
	}
	return &quoteRental.Response{
		SubjectID:  req.SubjectID,
		Start:      req.Start,
		End:        req.End,
		Computable: true,
		Quote: &pricing.RentalQuote{
			Period:          domain.Period{Name: "summer"},
			TotalDays:       5,
			DailyRate:       80,
			DailyDeductible: 10,
			TotalPrice:      450,
			LongStay:        true,
		},
	}, nil
}

func doRequest(h *Handler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/subjects/van-1/rental-quote?"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"subjectId": "van-1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := doRequest(h, "start=2025-07-10&end=2025-07-15")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "van-1", uc.gotReq.SubjectID)
	assert.Equal(t, 10, uc.gotReq.Start.Day())
	assert.Equal(t, 15, uc.gotReq.End.Day())

	var got RentalQuoteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.True(t, got.Computable)
	require.NotNil(t, got.Period)
	assert.Equal(t, "summer", *got.Period)
	require.NotNil(t, got.Start)
	assert.Equal(t, "2025-07-10", *got.Start)
	require.NotNil(t, got.TotalPrice)
	assert.Equal(t, 450.0, *got.TotalPrice)
}

func TestHandle_NotComputable(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"no dates", ""},
		{"only start", "start=2025-07-10"},
		{"same day", "start=2025-07-10&end=2025-07-10"},
		{"uncovered season", "start=2025-05-10&end=2025-05-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{noQuote: true}, logger.NewNop())

			rec := doRequest(h, tt.query)

			require.Equal(t, http.StatusOK, rec.Code)
			var raw map[string]interface{}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&raw))
			assert.Equal(t, false, raw["computable"])
			assert.NotContains(t, raw, "totalPrice")
			assert.NotContains(t, raw, "dailyRate")
			assert.NotContains(t, raw, "period")
		})
	}
}

func TestHandle_BadDate(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	assert.Equal(t, http.StatusBadRequest, doRequest(h, "start=10.07.2025&end=2025-07-15").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(h, "start=2025-07-10&end=x").Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid", quoteRental.ErrInvalidInput, http.StatusBadRequest},
		{"no table", quoteRental.ErrRateTableNotFound, http.StatusNotFound},
		{"persistence", quoteRental.ErrPersistence, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())
			assert.Equal(t, tt.code, doRequest(h, "start=2025-07-10&end=2025-07-15").Code)
		})
	}
}
