package sharing

import (
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// ParticipantInput is the profile of a user joining a group
type ParticipantInput struct {
	UserID string
	Name   string
	Email  string
	Phone  string
}

// Minter seeds group fields on a booking
type Minter struct {
	tokens TokenGenerator
	ids    IDGenerator
}

// NewMinter creates a Minter. Nil generators fall back to the random ones.
func NewMinter(tokens TokenGenerator, ids IDGenerator) *Minter {
	if tokens == nil {
		tokens = RandomTokens{}
	}
	if ids == nil {
		ids = UUIDs{}
	}
	return &Minter{tokens: tokens, ids: ids}
}

// EnsureGroup mints the share token, group id and organizer entry
// the first time it is called for a booking. Later calls return the
// existing token with minted=false and leave the booking untouched.
func (m *Minter) EnsureGroup(b *domain.Booking, organizer ParticipantInput, now time.Time) (string, bool, error) {
	if b.ShareToken != nil && *b.ShareToken != "" {
		return *b.ShareToken, false, nil
	}
	if organizer.UserID == "" {
		return "", false, ErrInvalidParticipant
	}

	token, err := m.tokens.NewToken()
	if err != nil {
		return "", false, err
	}

	groupID := m.ids.NewID()
	b.ShareToken = &token
	b.GroupID = &groupID

	entry := newParticipant(organizer, domain.RoleOrganizer, now)
	participants := make([]domain.Participant, 0, len(b.Participants)+1)
	participants = append(participants, entry)
	for _, p := range b.Participants {
		if p.UserID != organizer.UserID {
			participants = append(participants, p)
		}
	}
	b.Participants = participants

	return token, true, nil
}

// AddParticipant appends a member to a confirmed booking
func AddParticipant(b *domain.Booking, input ParticipantInput, now time.Time) (domain.Participant, error) {
	if input.UserID == "" {
		return domain.Participant{}, ErrInvalidParticipant
	}
	if b.Status != domain.StatusConfirmed {
		return domain.Participant{}, ErrNotConfirmed
	}
	if b.HasParticipant(input.UserID) {
		return domain.Participant{}, ErrAlreadyJoined
	}

	p := newParticipant(input, domain.RoleMember, now)
	b.Participants = append(b.Participants, p)
	return p, nil
}

func newParticipant(input ParticipantInput, role domain.ParticipantRole, now time.Time) domain.Participant {
	return domain.Participant{
		UserID:   input.UserID,
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		JoinedAt: now,
		Status:   domain.ParticipantJoined,
		Role:     role,
	}
}
