package create_booking

import (
	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/internal/pricing"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID         string
	Subject        domain.SubjectRef
	Status         domain.BookingStatus // draft или pending, пустое значение означает draft
	Details        domain.PersonalDetails
	CustomRequests *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
	Subject *domain.Subject

	// RentalQuote заполнен, если цена аренды рассчитана по тарифной таблице
	RentalQuote *pricing.RentalQuote
}
