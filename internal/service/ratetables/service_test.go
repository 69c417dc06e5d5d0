package ratetables

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/catalog"
	rateTableRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/ratetable"
	"github.com/m04kA/SMC-TravelBooking/internal/service/ratetables/models"
	"github.com/m04kA/SMC-TravelBooking/pkg/logger"
)

var now = time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

type fixedTime struct{}

func (fixedTime) Now() time.Time { return now }

type admins map[string]bool

func (a admins) IsAdmin(userID string) bool { return a[userID] }

type fakeRepo struct {
	tables    map[string]*domain.RateTable
	upsertErr error
}

func (f *fakeRepo) GetBySubjectID(_ context.Context, id string) (*domain.RateTable, error) {
	t, ok := f.tables[id]
	if !ok {
		return nil, rateTableRepo.ErrRateTableNotFound
	}
	return t, nil
}

func (f *fakeRepo) Upsert(_ context.Context, t *domain.RateTable) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.tables[t.SubjectID] = t
	return nil
}

type fakeCatalog struct{ services map[string]bool }

func (f *fakeCatalog) GetSubject(_ context.Context, ref domain.SubjectRef) (*domain.Subject, error) {
	if ref.Kind != domain.SubjectService || !f.services[ref.ID] {
		return nil, catalogRepo.ErrSubjectNotFound
	}
	return &domain.Subject{Ref: ref}, nil
}

func newService(repo *fakeRepo) *Service {
	s := NewService(repo, &fakeCatalog{services: map[string]bool{"camper": true}}, admins{"root": true}, logger.NewNop())
	s.timeProvider = fixedTime{}
	return s
}

func twoSeasons() *models.UpsertRateTableRequest {
	return &models.UpsertRateTableRequest{
		UserID:          "root",
		SubjectID:       "camper",
		DailyDeductible: 25,
		Periods: []models.PeriodRequest{
			{Name: "high", Start: "06-01", End: "09-30", ShortStayDailyRate: 120, LongStayDailyRate: 95},
			{Name: "low", Start: "10-01", End: "05-31", ShortStayDailyRate: 80, LongStayDailyRate: 60},
		},
	}
}

func TestUpsert(t *testing.T) {
	repo := &fakeRepo{tables: map[string]*domain.RateTable{}}
	s := newService(repo)

	resp, err := s.Upsert(context.Background(), twoSeasons())
	require.NoError(t, err)

	assert.Equal(t, "camper", resp.SubjectID)
	assert.Equal(t, domain.DefaultShortStayThreshold, resp.ShortStayThreshold)
	require.Len(t, resp.Periods, 2)
	assert.Equal(t, "10-01", resp.Periods[1].Start)
	assert.Equal(t, "05-31", resp.Periods[1].End)
	assert.Equal(t, now, repo.tables["camper"].UpdatedAt)

	got, err := s.Get(context.Background(), "camper")
	require.NoError(t, err)
	assert.Equal(t, resp, got)
}

func TestUpsert_Rejections(t *testing.T) {
	overlapping := twoSeasons()
	overlapping.Periods[1].Start = "09-15"

	gap := twoSeasons()
	gap.Periods[1].End = "05-30"

	badDate := twoSeasons()
	badDate.Periods[0].Start = "6/1"

	notAdmin := twoSeasons()
	notAdmin.UserID = "alice"

	unknown := twoSeasons()
	unknown.SubjectID = "yacht"

	tests := []struct {
		name    string
		req     *models.UpsertRateTableRequest
		wantErr []error
	}{
		{"overlap", overlapping, []error{ErrInvalidInput, domain.ErrRateTableOverlap}},
		{"gap", gap, []error{ErrInvalidInput, domain.ErrRateTableGap}},
		{"malformed boundary", badDate, []error{ErrInvalidInput}},
		{"not admin", notAdmin, []error{ErrAccessDenied}},
		{"not a catalog service", unknown, []error{ErrSubjectNotFound}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{tables: map[string]*domain.RateTable{}}
			_, err := newService(repo).Upsert(context.Background(), tt.req)
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
			assert.Empty(t, repo.tables)
		})
	}
}

func TestUpsert_StoreDown(t *testing.T) {
	repo := &fakeRepo{tables: map[string]*domain.RateTable{}, upsertErr: errors.New("deadlock")}
	_, err := newService(repo).Upsert(context.Background(), twoSeasons())
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestGet_NotFound(t *testing.T) {
	_, err := newService(&fakeRepo{tables: map[string]*domain.RateTable{}}).Get(context.Background(), "camper")
	assert.ErrorIs(t, err, ErrRateTableNotFound)
}

func TestParseMonthDay(t *testing.T) {
	m, d, err := models.ParseMonthDay("02-29")
	require.NoError(t, err)
	assert.Equal(t, time.February, m)
	assert.Equal(t, 29, d)

	for _, bad := range []string{"", "2-29", "13-01", "00-10", "ab-cd", "02-29x"} {
		_, _, err := models.ParseMonthDay(bad)
		assert.ErrorIs(t, err, models.ErrInvalidMonthDay, bad)
	}
}
