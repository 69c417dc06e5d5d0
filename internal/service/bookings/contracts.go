package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListBySubject(ctx context.Context, ref domain.SubjectRef, statuses []domain.BookingStatus) ([]*domain.Booking, error)
	Update(ctx context.Context, id string, patch domain.BookingPatch) error
}

// AdminChecker проверяет, является ли пользователь администратором агентства
type AdminChecker interface {
	IsAdmin(userID string) bool
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
