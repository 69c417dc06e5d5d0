package quote_rental

import (
	"context"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// RateTableRepository интерфейс репозитория тарифных таблиц
type RateTableRepository interface {
	GetBySubjectID(ctx context.Context, subjectID string) (*domain.RateTable, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
