package quotes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-TravelBooking/internal/service/quotes/models"
	"github.com/m04kA/SMC-TravelBooking/pkg/logger"
	"github.com/m04kA/SMC-TravelBooking/pkg/ptr"
)

type fakeCatalog struct {
	subjects map[string]*domain.Subject
	err      error
}

func (f *fakeCatalog) GetSubject(_ context.Context, ref domain.SubjectRef) (*domain.Subject, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.subjects[string(ref.Kind)+"/"+ref.ID]
	if !ok {
		return nil, catalogRepo.ErrSubjectNotFound
	}
	return s, nil
}

func catalog() *fakeCatalog {
	return &fakeCatalog{subjects: map[string]*domain.Subject{
		"experience/tango": {Title: "Tango night", PricePerPerson: ptr.Ptr(100.0)},
		"travel/flat":      {Title: "Flat priced", Price: ptr.Ptr(50.0)},
		"travel/free":      {Title: "No price"},
	}}
}

func TestQuoteItem(t *testing.T) {
	s := NewService(catalog(), 0.3, logger.NewNop())

	resp, err := s.QuoteItem(context.Background(), &models.ItemQuoteRequest{
		SubjectKind: "experience", SubjectID: "tango", Travelers: 2, Children: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 270.0, resp.TotalPrice)
	assert.Equal(t, "Tango night", resp.Title)
	assert.Equal(t, 0.3, resp.ChildDiscountRate)

	flat, err := s.QuoteItem(context.Background(), &models.ItemQuoteRequest{SubjectKind: "travel", SubjectID: "flat", Travelers: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, flat.Travelers)
	assert.Equal(t, 50.0, flat.TotalPrice)
}

func TestQuoteItem_Errors(t *testing.T) {
	tests := []struct {
		name    string
		catalog *fakeCatalog
		req     *models.ItemQuoteRequest
		wantErr error
	}{
		{"bad kind", catalog(), &models.ItemQuoteRequest{SubjectKind: "boat", SubjectID: "x"}, ErrInvalidInput},
		{"unknown", catalog(), &models.ItemQuoteRequest{SubjectKind: "travel", SubjectID: "x"}, ErrSubjectNotFound},
		{"no price", catalog(), &models.ItemQuoteRequest{SubjectKind: "travel", SubjectID: "free"}, ErrPriceUnavailable},
		{"catalog down", &fakeCatalog{err: errors.New("down")}, &models.ItemQuoteRequest{SubjectKind: "travel", SubjectID: "x"}, ErrPersistence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(tt.catalog, 0.3, logger.NewNop()).QuoteItem(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
