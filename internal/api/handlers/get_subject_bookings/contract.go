package get_subject_bookings

import (
	"context"

	"github.com/m04kA/SMC-TravelBooking/internal/service/bookings/models"
)

type BookingService interface {
	GetSubjectBookings(ctx context.Context, req *models.GetSubjectBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
