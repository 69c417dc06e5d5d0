package submit_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/internal/integrations/notifier"
	"github.com/m04kA/SMC-TravelBooking/internal/sharing"
	"github.com/m04kA/SMC-TravelBooking/internal/usecase/load_booking"
)

// BookingLoader загрузка бронирования для редактирования (общая с формой редактирования)
type BookingLoader interface {
	Execute(ctx context.Context, req *load_booking.Request) (*load_booking.Response, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Update(ctx context.Context, id string, patch domain.BookingPatch) error
}

// GroupMinter выпускает токен группы и организатора
type GroupMinter interface {
	EnsureGroup(b *domain.Booking, organizer sharing.ParticipantInput, now time.Time) (string, bool, error)
}

// Notifier уведомление путешественника о подтверждении
type Notifier interface {
	NotifyConfirmed(ctx context.Context, c notifier.Confirmation) error
}

// Metrics счетчики отправок
type Metrics interface {
	BookingSubmitted(status string, tokenMinted bool)
	PriceUnavailableInc()
	NotificationFailed(channel string)
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
