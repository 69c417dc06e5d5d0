package join_group

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/internal/integrations/userservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByShareToken(ctx context.Context, token string) (*domain.Booking, error)
	AppendParticipant(ctx context.Context, id string, participant domain.Participant, updatedAt time.Time) error
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetProfileWithGracefulDegradation(ctx context.Context, userID string) (*userservice.Profile, error)
}

// Metrics счетчик вступлений в группы
type Metrics interface {
	GroupJoined()
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
