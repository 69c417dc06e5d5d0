package edit_booking

import (
	"context"

	loadBooking "github.com/m04kA/SMC-TravelBooking/internal/usecase/load_booking"
)

type LoadBookingUseCase interface {
	Execute(ctx context.Context, req *loadBooking.Request) (*loadBooking.Response, error)
}

type AdminChecker interface {
	IsAdmin(userID string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
