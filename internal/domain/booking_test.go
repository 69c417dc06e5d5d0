package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooking_TransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"draft to pending", StatusDraft, StatusPending, true},
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"draft to confirmed", StatusDraft, StatusConfirmed, false},
		{"cancelled to confirmed", StatusCancelled, StatusConfirmed, false},
		{"completed to cancelled", StatusCompleted, StatusCancelled, false},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"confirmed to confirmed", StatusConfirmed, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			err := b.TransitionTo(tt.to)

			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, b.Status)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTransition))
			assert.Equal(t, tt.from, b.Status, "aggregate must stay unchanged")
		})
	}
}

func TestBooking_CancelledToConfirmedIsBlocked(t *testing.T) {
	b := &Booking{ID: "b-1", Status: StatusCancelled, TotalPrice: 500}

	err := b.TransitionTo(StatusConfirmed)

	var transitionErr *TransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, StatusCancelled, transitionErr.From)
	assert.Equal(t, StatusConfirmed, transitionErr.To)
	assert.Equal(t, StatusCancelled, b.Status)
	assert.Equal(t, 500.0, b.TotalPrice)
}

func TestBooking_IsFinal(t *testing.T) {
	for status, final := range map[BookingStatus]bool{
		StatusDraft:     false,
		StatusPending:   false,
		StatusConfirmed: false,
		StatusCompleted: true,
		StatusCancelled: true,
	} {
		b := &Booking{Status: status}
		assert.Equal(t, final, b.IsFinal(), string(status))
	}
}

func TestPersonalDetails_Normalize(t *testing.T) {
	d := PersonalDetails{Name: " Ana ", Email: "ana@example.com\n", Phone: "  +54 11 ", TravelerCount: 0, ChildCount: -2}

	d.Normalize()

	assert.Equal(t, "Ana", d.Name)
	assert.Equal(t, "ana@example.com", d.Email)
	assert.Equal(t, "+54 11", d.Phone)
	assert.Equal(t, 1, d.TravelerCount)
	assert.Equal(t, 0, d.ChildCount)
}

func TestNormalizeCounts(t *testing.T) {
	assert.Equal(t, 1, NormalizeTravelerCount(0))
	assert.Equal(t, 1, NormalizeTravelerCount(-3))
	assert.Equal(t, 4, NormalizeTravelerCount(4))
	assert.Equal(t, 0, NormalizeChildCount(-1))
	assert.Equal(t, 2, NormalizeChildCount(2))

	details := PersonalDetails{TravelerCount: 0, ChildCount: -2}
	details.Normalize()
	assert.Equal(t, 1, details.TravelerCount)
	assert.Equal(t, 0, details.ChildCount)
}

func TestBooking_Participants(t *testing.T) {
	b := &Booking{
		Participants: []Participant{
			{UserID: "u-1", Role: RoleOrganizer, Status: ParticipantJoined},
			{UserID: "u-2", Role: RoleMember, Status: ParticipantJoined},
			{UserID: "u-3", Role: RoleMember, Status: ParticipantDeclined},
		},
	}

	assert.True(t, b.HasParticipant("u-2"))
	assert.False(t, b.HasParticipant("u-9"))
	assert.Equal(t, 2, b.JoinedCount())

	organizer, ok := b.Organizer()
	require.True(t, ok)
	assert.Equal(t, "u-1", organizer.UserID)

	_, ok = (&Booking{}).Organizer()
	assert.False(t, ok)
}

func TestBooking_HasConfirmedTotal(t *testing.T) {
	assert.False(t, (&Booking{}).HasConfirmedTotal())
	assert.False(t, (&Booking{TotalPrice: -1}).HasConfirmedTotal())
	assert.True(t, (&Booking{TotalPrice: 960}).HasConfirmedTotal())
}

func TestParseBookingStatus(t *testing.T) {
	status, err := ParseBookingStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	_, err = ParseBookingStatus("cancelled_by_user")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestParseSubjectKind(t *testing.T) {
	kind, err := ParseSubjectKind("experience")
	require.NoError(t, err)
	assert.Equal(t, SubjectExperience, kind)

	_, err = ParseSubjectKind("vehicle")
	assert.ErrorIs(t, err, ErrUnknownSubjectKind)
}

func TestValidationError(t *testing.T) {
	v := NewValidationError()
	assert.False(t, v.HasErrors())

	v.Add("email", "email is required")
	v.Add("email", "ignored second message")
	v.Add("name", "name is required")

	require.True(t, v.HasErrors())
	assert.Equal(t, "email is required", v.Fields()["email"])
	assert.Equal(t, "validation failed: email: email is required; name: name is required", v.Error())

	wrapped := errors.Join(errors.New("outer"), v)
	assert.Same(t, v, AsValidationError(wrapped))
	assert.Nil(t, AsValidationError(errors.New("plain")))
	assert.Nil(t, AsValidationError(nil))
}

func TestSubject_CatalogPricePerPerson(t *testing.T) {
	perPerson := 120.0
	flat := 300.0
	zero := 0.0

	assert.Equal(t, 120.0, (&Subject{PricePerPerson: &perPerson, Price: &flat}).CatalogPricePerPerson())
	assert.Equal(t, 300.0, (&Subject{PricePerPerson: &zero, Price: &flat}).CatalogPricePerPerson())
	assert.Equal(t, 0.0, (&Subject{}).CatalogPricePerPerson())
}
