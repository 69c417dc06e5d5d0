package models

import (
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// Request модели

// ChangeStatusRequest запрос на смену статуса бронирования
type ChangeStatusRequest struct {
	UserID string `json:"-"`
	Status string `json:"status"`
}

// SetPriceRequest запрос администратора на установку итоговой цены
type SetPriceRequest struct {
	UserID     string  `json:"-"`
	TotalPrice float64 `json:"totalPrice"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID string  `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetSubjectBookingsRequest запрос на получение бронирований тура, впечатления или услуги
type GetSubjectBookingsRequest struct {
	UserID      string   `json:"userId"`
	SubjectKind string   `json:"subjectKind"`
	SubjectID   string   `json:"subjectId"`
	Statuses    []string `json:"statuses,omitempty"` // пустой список означает активные статусы
}

// Response модели

// PersonalDetailsResponse контактные данные и состав группы
type PersonalDetailsResponse struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	TravelerCount int     `json:"travelerCount"`
	ChildCount    int     `json:"childCount"`
	ChildrenAges  string  `json:"childrenAges,omitempty"`
	DepartureDate string  `json:"departureDate,omitempty"` // "2025-10-15"
	ReturnDate    *string `json:"returnDate,omitempty"`
	DepartureCity *string `json:"departureCity,omitempty"`
}

// ParticipantResponse участник группы
type ParticipantResponse struct {
	UserID   string    `json:"userId"`
	Name     string    `json:"name"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	JoinedAt time.Time `json:"joinedAt"`
	Status   string    `json:"status"`
	Role     string    `json:"role"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          string `json:"id"`
	SubjectKind string `json:"subjectKind"`
	SubjectID   string `json:"subjectId"`
	OwnerUserID string `json:"ownerUserId"`
	Status      string `json:"status"`

	PersonalDetails PersonalDetailsResponse `json:"personalDetails"`
	CustomRequests  *string                 `json:"customRequests,omitempty"`

	TotalPrice        float64 `json:"totalPrice"`
	HasConfirmedTotal bool    `json:"hasConfirmedTotal"`

	ShareToken   *string               `json:"shareToken,omitempty"` // только для владельца
	GroupID      *string               `json:"groupId,omitempty"`
	Participants []ParticipantResponse `json:"participants"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                b.ID,
		SubjectKind:       string(b.Subject.Kind),
		SubjectID:         b.Subject.ID,
		OwnerUserID:       b.OwnerUserID,
		Status:            string(b.Status),
		PersonalDetails:   fromDomainDetails(b.PersonalDetails),
		CustomRequests:    b.CustomRequests,
		TotalPrice:        b.TotalPrice,
		HasConfirmedTotal: b.HasConfirmedTotal(),
		ShareToken:        b.ShareToken,
		GroupID:           b.GroupID,
		Participants:      make([]ParticipantResponse, 0, len(b.Participants)),
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}

	for _, p := range b.Participants {
		resp.Participants = append(resp.Participants, ParticipantResponse{
			UserID:   p.UserID,
			Name:     p.Name,
			Email:    p.Email,
			Phone:    p.Phone,
			JoinedAt: p.JoinedAt,
			Status:   string(p.Status),
			Role:     string(p.Role),
		})
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

func fromDomainDetails(d domain.PersonalDetails) PersonalDetailsResponse {
	resp := PersonalDetailsResponse{
		Name:          d.Name,
		Email:         d.Email,
		Phone:         d.Phone,
		TravelerCount: d.TravelerCount,
		ChildCount:    d.ChildCount,
		ChildrenAges:  d.ChildrenAges,
		DepartureCity: d.DepartureCity,
	}

	if !d.DepartureDate.IsZero() {
		resp.DepartureDate = d.DepartureDate.Format(domain.DateFormat)
	}
	if d.ReturnDate != nil {
		returnDate := d.ReturnDate.Format(domain.DateFormat)
		resp.ReturnDate = &returnDate
	}

	return resp
}
