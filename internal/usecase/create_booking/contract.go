package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
}

// CatalogRepository интерфейс каталога туров, впечатлений и услуг
type CatalogRepository interface {
	GetSubject(ctx context.Context, ref domain.SubjectRef) (*domain.Subject, error)
}

// RateTableRepository интерфейс репозитория тарифных таблиц
type RateTableRepository interface {
	GetBySubjectID(ctx context.Context, subjectID string) (*domain.RateTable, error)
}

// IDGenerator генератор идентификаторов бронирований
type IDGenerator interface {
	NewID() string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
