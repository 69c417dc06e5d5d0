package ratetables

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// RateTableRepository интерфейс репозитория тарифных таблиц
type RateTableRepository interface {
	GetBySubjectID(ctx context.Context, subjectID string) (*domain.RateTable, error)
	Upsert(ctx context.Context, table *domain.RateTable) error
}

// CatalogRepository интерфейс каталога
type CatalogRepository interface {
	GetSubject(ctx context.Context, ref domain.SubjectRef) (*domain.Subject, error)
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
