package sharing

import "errors"

var (
	// ErrNotConfirmed is returned when joining a booking that is not confirmed
	ErrNotConfirmed = errors.New("sharing: booking is not confirmed")

	// ErrAlreadyJoined is returned when the user is already a participant
	ErrAlreadyJoined = errors.New("sharing: user already joined")

	// ErrTokenGeneration is returned when the random source fails
	ErrTokenGeneration = errors.New("sharing: failed to generate share token")

	// ErrInvalidParticipant is returned when the participant has no user id
	ErrInvalidParticipant = errors.New("sharing: participant user id is required")
)
