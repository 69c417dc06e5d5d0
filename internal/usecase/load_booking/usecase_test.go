package load_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-TravelBooking/pkg/logger"
	"github.com/m04kA/SMC-TravelBooking/pkg/ptr"
)

type fakeBookings struct {
	booking *domain.Booking
	err     error
}

func (f *fakeBookings) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

type fakeCatalog struct {
	subject *domain.Subject
	err     error
	calls   int
}

func (f *fakeCatalog) GetSubject(context.Context, domain.SubjectRef) (*domain.Subject, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.subject == nil {
		return nil, catalogRepo.ErrSubjectNotFound
	}
	return f.subject, nil
}

func booking(total float64, travelers int) *domain.Booking {
	return &domain.Booking{
		ID:              "b-1",
		Subject:         domain.SubjectRef{Kind: domain.SubjectTravel, ID: "andes-7d"},
		OwnerUserID:     "owner",
		Status:          domain.StatusPending,
		TotalPrice:      total,
		PersonalDetails: domain.PersonalDetails{TravelerCount: travelers},
		Participants: []domain.Participant{
			{UserID: "owner", Role: domain.RoleOrganizer, Status: domain.ParticipantJoined},
			{UserID: "friend", Role: domain.RoleMember, Status: domain.ParticipantJoined},
		},
	}
}

func tour(price float64) *domain.Subject {
	return &domain.Subject{
		Ref:            domain.SubjectRef{Kind: domain.SubjectTravel, ID: "andes-7d"},
		Title:          "Andes",
		PricePerPerson: ptr.Ptr(price),
	}
}

func TestLoadBooking_ConfirmedTotalIsSticky(t *testing.T) {
	uc := NewUseCase(&fakeBookings{booking: booking(960, 4)}, &fakeCatalog{subject: tour(150)}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{BookingID: "b-1", UserID: "owner"})
	require.NoError(t, err)

	assert.True(t, resp.HasConfirmedTotal)
	assert.Equal(t, 240.0, resp.DisplayPricePerPerson.Amount())
	assert.Zero(t, float64(resp.CatalogPricePerPerson))
	assert.Zero(t, resp.ProvisionalTotal)
	assert.Equal(t, 240.0, resp.PricePerPersonForView())
	assert.Equal(t, 960.0, resp.TotalForView())
}

func TestLoadBooking_ProvisionalFromCatalog(t *testing.T) {
	uc := NewUseCase(&fakeBookings{booking: booking(0, 3)}, &fakeCatalog{subject: tour(120)}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{BookingID: "b-1", UserID: "friend"})
	require.NoError(t, err)

	assert.False(t, resp.HasConfirmedTotal)
	assert.Equal(t, 120.0, float64(resp.CatalogPricePerPerson))
	assert.Equal(t, 360.0, resp.ProvisionalTotal)
	assert.Equal(t, 360.0, resp.TotalForView())
}

func TestLoadBooking_ZeroTravelersDisplay(t *testing.T) {
	uc := NewUseCase(&fakeBookings{booking: booking(500, 0)}, &fakeCatalog{}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{BookingID: "b-1", UserID: "owner"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.DisplayPricePerPerson.Amount())
	assert.Nil(t, resp.Subject)
}

func TestLoadBooking_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repo    *fakeBookings
		catalog *fakeCatalog
		req     *Request
		wantErr error
	}{
		{
			name:    "missing ids",
			repo:    &fakeBookings{},
			catalog: &fakeCatalog{},
			req:     &Request{},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "not found",
			repo:    &fakeBookings{},
			catalog: &fakeCatalog{},
			req:     &Request{BookingID: "b-404", UserID: "owner"},
			wantErr: ErrBookingNotFound,
		},
		{
			name:    "store down",
			repo:    &fakeBookings{err: errors.New("timeout")},
			catalog: &fakeCatalog{},
			req:     &Request{BookingID: "b-1", UserID: "owner"},
			wantErr: ErrPersistence,
		},
		{
			name:    "stranger",
			repo:    &fakeBookings{booking: booking(0, 2)},
			catalog: &fakeCatalog{},
			req:     &Request{BookingID: "b-1", UserID: "stranger"},
			wantErr: ErrAccessDenied,
		},
		{
			name:    "catalog down without sealed total",
			repo:    &fakeBookings{booking: booking(0, 2)},
			catalog: &fakeCatalog{err: errors.New("db down")},
			req:     &Request{BookingID: "b-1", UserID: "owner"},
			wantErr: ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.repo, tt.catalog, logger.NewNop())
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadBooking_AdminAndCatalogOutage(t *testing.T) {
	uc := NewUseCase(&fakeBookings{booking: booking(960, 4)}, &fakeCatalog{err: errors.New("db down")}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{BookingID: "b-1", UserID: "admin", IsAdmin: true})
	require.NoError(t, err)
	assert.True(t, resp.HasConfirmedTotal)
	assert.Nil(t, resp.Subject)
}
