package set_booking_price

import (
	"context"

	"github.com/m04kA/SMC-TravelBooking/internal/service/bookings/models"
)

type BookingService interface {
	SetQuotedPrice(ctx context.Context, bookingID string, req *models.SetPriceRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
