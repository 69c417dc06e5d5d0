package quote_item

import (
	"context"

	"github.com/m04kA/SMC-TravelBooking/internal/service/quotes/models"
)

type QuoteService interface {
	QuoteItem(ctx context.Context, req *models.ItemQuoteRequest) (*models.ItemQuoteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
