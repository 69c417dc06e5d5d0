package quotes

import (
	"context"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// CatalogRepository интерфейс каталога
type CatalogRepository interface {
	GetSubject(ctx context.Context, ref domain.SubjectRef) (*domain.Subject, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
