package quote_rental

import (
	"context"

	quoteRental "github.com/m04kA/SMC-TravelBooking/internal/usecase/quote_rental"
)

type QuoteRentalUseCase interface {
	Execute(ctx context.Context, req *quoteRental.Request) (*quoteRental.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
