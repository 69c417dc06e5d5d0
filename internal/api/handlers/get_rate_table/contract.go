package get_rate_table

import (
	"context"

	"github.com/m04kA/SMC-TravelBooking/internal/service/ratetables/models"
)

type RateTableService interface {
	Get(ctx context.Context, subjectID string) (*models.RateTableResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
