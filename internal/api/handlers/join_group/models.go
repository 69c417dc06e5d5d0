package join_group

import (
	"time"

	joinGroup "github.com/m04kA/SMC-TravelBooking/internal/usecase/join_group"
)

// JoinGroupRequest контактные данные участника.
// Используются, только если профиль в UserService недоступен.
type JoinGroupRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// JoinGroupResponse HTTP response model
type JoinGroupResponse struct {
	BookingID        string    `json:"bookingId"`
	GroupID          string    `json:"groupId"`
	UserID           string    `json:"userId"`
	Name             string    `json:"name"`
	Role             string    `json:"role"`
	JoinedAt         time.Time `json:"joinedAt"`
	ParticipantCount int       `json:"participantCount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *JoinGroupRequest) ToUseCaseRequest(shareToken, userID string) *joinGroup.Request {
	return &joinGroup.Request{
		ShareToken: shareToken,
		UserID:     userID,
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *joinGroup.Response) *JoinGroupResponse {
	return &JoinGroupResponse{
		BookingID:        resp.BookingID,
		GroupID:          resp.GroupID,
		UserID:           resp.Participant.UserID,
		Name:             resp.Participant.Name,
		Role:             string(resp.Participant.Role),
		JoinedAt:         resp.Participant.JoinedAt,
		ParticipantCount: resp.ParticipantCount,
	}
}
