package edit_booking

import (
	"github.com/m04kA/SMC-TravelBooking/internal/service/bookings/models"
	loadBooking "github.com/m04kA/SMC-TravelBooking/internal/usecase/load_booking"
)

// EditBookingResponse данные для формы редактирования бронирования
type EditBookingResponse struct {
	Booking      *models.BookingResponse `json:"booking"`
	SubjectTitle string                  `json:"subjectTitle,omitempty"`

	// HasConfirmedTotal: цена зафиксирована, pricePerPerson только для показа
	HasConfirmedTotal bool    `json:"hasConfirmedTotal"`
	PricePerPerson    float64 `json:"pricePerPerson"`
	TotalPrice        float64 `json:"totalPrice"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *loadBooking.Response, viewerUserID string, isAdmin bool) *EditBookingResponse {
	booking := models.FromDomainBooking(resp.Booking)
	if !isAdmin && !resp.Booking.IsOwner(viewerUserID) {
		booking.ShareToken = nil
	}

	out := &EditBookingResponse{
		Booking:           booking,
		HasConfirmedTotal: resp.HasConfirmedTotal,
		PricePerPerson:    resp.PricePerPersonForView(),
		TotalPrice:        resp.TotalForView(),
	}
	if resp.Subject != nil {
		out.SubjectTitle = resp.Subject.Title
	}
	return out
}
