package domain

import (
	"strings"
	"time"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusDraft     BookingStatus = "draft"
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// allowedTransitions lists every status change the aggregate accepts.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusDraft:     {StatusPending},
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// ParseBookingStatus converts a raw string into a known BookingStatus
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	for _, known := range AllStatuses {
		if status == known {
			return status, nil
		}
	}
	return "", ErrUnknownStatus
}

// SubjectKind is the kind of catalog item a booking refers to
type SubjectKind string

const (
	SubjectTravel     SubjectKind = "travel"
	SubjectExperience SubjectKind = "experience"
	SubjectService    SubjectKind = "service" // vehicles, guides, insurance
)

// ParseSubjectKind converts a raw string into a known SubjectKind
func ParseSubjectKind(s string) (SubjectKind, error) {
	switch kind := SubjectKind(s); kind {
	case SubjectTravel, SubjectExperience, SubjectService:
		return kind, nil
	default:
		return "", ErrUnknownSubjectKind
	}
}

// SubjectRef points at exactly one travel, experience or service
type SubjectRef struct {
	Kind SubjectKind
	ID   string
}

// IsZero returns true if the reference is not set
func (r SubjectRef) IsZero() bool {
	return r.Kind == "" || r.ID == ""
}

// PersonalDetails holds the booker's contact data and party composition
type PersonalDetails struct {
	Name          string
	Email         string
	Phone         string
	TravelerCount int
	ChildCount    int
	ChildrenAges  string
	DepartureDate time.Time
	ReturnDate    *time.Time
	DepartureCity *string
}

// Normalize trims contact fields and clamps party counts into their valid ranges
func (d *PersonalDetails) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.TravelerCount = NormalizeTravelerCount(d.TravelerCount)
	d.ChildCount = NormalizeChildCount(d.ChildCount)
}

// ParticipantStatus is the state of a group member
type ParticipantStatus string

const (
	ParticipantJoined   ParticipantStatus = "joined"
	ParticipantInvited  ParticipantStatus = "invited"
	ParticipantDeclined ParticipantStatus = "declined"
)

// ParticipantRole is the role of a group member
type ParticipantRole string

const (
	RoleOrganizer ParticipantRole = "organizer"
	RoleMember    ParticipantRole = "member"
)

// Participant is one traveler attached to a shared booking
type Participant struct {
	UserID   string
	Name     string
	Email    string
	Phone    string
	JoinedAt time.Time
	Status   ParticipantStatus
	Role     ParticipantRole
}

// Booking represents one reservation attempt and its lifecycle
type Booking struct {
	ID          string
	Subject     SubjectRef
	OwnerUserID string
	Status      BookingStatus

	PersonalDetails PersonalDetails
	CustomRequests  *string

	// TotalPrice is sealed once positive: it is never recomputed from catalog rates.
	TotalPrice float64

	ShareToken   *string
	GroupID      *string
	Participants []Participant

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasConfirmedTotal returns true if the booking already carries a positive total
func (b *Booking) HasConfirmedTotal() bool {
	return b.TotalPrice > 0
}

// CanTransitionTo returns true if the status change is in the allowed set
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range allowedTransitions[b.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo moves the booking to the next status.
// The booking is left unchanged when the transition is not allowed.
func (b *Booking) TransitionTo(next BookingStatus) error {
	if !b.CanTransitionTo(next) {
		return &TransitionError{From: b.Status, To: next}
	}
	b.Status = next
	return nil
}

// IsOwner returns true if the user created the booking
func (b *Booking) IsOwner(userID string) bool {
	return userID != "" && b.OwnerUserID == userID
}

// HasParticipant returns true if the user is already in the participant list
func (b *Booking) HasParticipant(userID string) bool {
	for _, p := range b.Participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// JoinedCount returns the number of participants with status joined
func (b *Booking) JoinedCount() int {
	count := 0
	for _, p := range b.Participants {
		if p.Status == ParticipantJoined {
			count++
		}
	}
	return count
}

// Organizer returns participant 0 if the group has been seeded
func (b *Booking) Organizer() (Participant, bool) {
	if len(b.Participants) == 0 || b.Participants[0].Role != RoleOrganizer {
		return Participant{}, false
	}
	return b.Participants[0], true
}

// IsFinal returns true if no further status changes are possible
func (b *Booking) IsFinal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// NormalizeTravelerCount clamps the traveler count to at least one
func NormalizeTravelerCount(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// NormalizeChildCount clamps the child count to zero or more
func NormalizeChildCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// BookingPatch is a partial update of a booking document.
// Nil fields are left untouched by the store.
type BookingPatch struct {
	Status          *BookingStatus
	PersonalDetails *PersonalDetails
	CustomRequests  *string
	TotalPrice      *float64
	ShareToken      *string
	GroupID         *string
	Participants    []Participant
	UpdatedAt       time.Time
}
