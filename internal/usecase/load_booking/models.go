package load_booking

import (
	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/internal/pricing"
)

// Request модель запроса на загрузку бронирования для редактирования
type Request struct {
	BookingID string
	UserID    string
	IsAdmin   bool // администратор видит любое бронирование
}

// Response представление бронирования для формы редактирования.
//
// HasConfirmedTotal вычисляется до любых расчетов цены и дальше не меняется.
// При HasConfirmedTotal заполнен DisplayPricePerPerson (только для показа),
// иначе CatalogPricePerPerson и ProvisionalTotal.
type Response struct {
	Booking *domain.Booking
	Subject *domain.Subject // nil, если предмета нет в каталоге

	HasConfirmedTotal     bool
	DisplayPricePerPerson pricing.DisplayPrice
	CatalogPricePerPerson pricing.CatalogPrice
	ProvisionalTotal      float64
}

// PricePerPersonForView цена за человека для отображения в форме
func (r *Response) PricePerPersonForView() float64 {
	if r.HasConfirmedTotal {
		return r.DisplayPricePerPerson.Amount()
	}
	return float64(r.CatalogPricePerPerson)
}

// TotalForView итоговая цена для отображения в форме
func (r *Response) TotalForView() float64 {
	if r.HasConfirmedTotal {
		return r.Booking.TotalPrice
	}
	return r.ProvisionalTotal
}
