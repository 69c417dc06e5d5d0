package load_booking

import (
	"context"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

// CatalogRepository интерфейс каталога туров, впечатлений и услуг
type CatalogRepository interface {
	GetSubject(ctx context.Context, ref domain.SubjectRef) (*domain.Subject, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
