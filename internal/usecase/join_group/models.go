package join_group

import "github.com/m04kA/SMC-TravelBooking/internal/domain"

// Request модель запроса на вступление в группу.
// Имя, email и телефон используются, только если UserService не вернул профиль.
type Request struct {
	ShareToken string
	UserID     string
	Name       string
	Email      string
	Phone      string
}

// Response результат вступления
type Response struct {
	BookingID        string
	GroupID          string
	Participant      domain.Participant
	ParticipantCount int
}
