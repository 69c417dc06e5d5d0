package ratetables

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/catalog"
	rateTableRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/ratetable"
	"github.com/m04kA/SMC-TravelBooking/internal/service/ratetables/models"
)

// Service сервис для работы с тарифными таблицами аренды
type Service struct {
	rateTableRepo RateTableRepository
	catalogRepo   CatalogRepository
	admins        AdminChecker
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса тарифных таблиц
func NewService(
	rateTableRepo RateTableRepository,
	catalogRepo CatalogRepository,
	admins AdminChecker,
	logger Logger,
) *Service {
	return &Service{
		rateTableRepo: rateTableRepo,
		catalogRepo:   catalogRepo,
		admins:        admins,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Get получает тарифную таблицу услуги
// Публичный метод - доступен всем
func (s *Service) Get(ctx context.Context, subjectID string) (*models.RateTableResponse, error) {
	s.logger.Info("Get: fetching rate table for subject=%s", subjectID)

	if subjectID == "" {
		return nil, fmt.Errorf("%w: subjectID is required", ErrInvalidInput)
	}

	table, err := s.rateTableRepo.GetBySubjectID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, rateTableRepo.ErrRateTableNotFound) {
			s.logger.Warn("Get: rate table for subject=%s not found", subjectID)
			return nil, ErrRateTableNotFound
		}
		s.logger.Error("Get: repository error for subject=%s: %v", subjectID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrPersistence, err)
	}

	s.logger.Info("Get: successfully fetched rate table for subject=%s, periods=%d", subjectID, len(table.Periods))
	return models.FromDomainRateTable(table), nil
}

// Upsert создает или полностью заменяет тарифную таблицу
// Доступно только администраторам. Таблица должна покрывать весь год без пересечений.
func (s *Service) Upsert(ctx context.Context, req *models.UpsertRateTableRequest) (*models.RateTableResponse, error) {
	s.logger.Info("Upsert: rate table for subject=%s by user=%s, periods=%d", req.SubjectID, req.UserID, len(req.Periods))

	// 1. Проверяем права доступа
	if !s.admins.IsAdmin(req.UserID) {
		s.logger.Warn("Upsert: user=%s is not an admin", req.UserID)
		return nil, ErrAccessDenied
	}

	// 2. Валидируем таблицу
	table, err := Validate(req)
	if err != nil {
		s.logger.Warn("Upsert: validation failed for subject=%s: %v", req.SubjectID, err)
		return nil, err
	}

	// 3. Тарифная таблица бывает только у услуг из каталога
	ref := domain.SubjectRef{Kind: domain.SubjectService, ID: req.SubjectID}
	if _, err := s.catalogRepo.GetSubject(ctx, ref); err != nil {
		if errors.Is(err, catalogRepo.ErrSubjectNotFound) {
			s.logger.Warn("Upsert: service subject=%s not found in catalog", req.SubjectID)
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("Upsert: catalog error for subject=%s: %v", req.SubjectID, err)
		return nil, fmt.Errorf("%w: Upsert - catalog error: %v", ErrPersistence, err)
	}

	// 4. Сохраняем
	table.UpdatedAt = s.timeProvider.Now()
	if err := s.rateTableRepo.Upsert(ctx, table); err != nil {
		s.logger.Error("Upsert: repository error for subject=%s: %v", req.SubjectID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrPersistence, err)
	}

	s.logger.Info("Upsert: successfully saved rate table for subject=%s", req.SubjectID)
	return models.FromDomainRateTable(table), nil
}

// Validate конвертирует запрос в тарифную таблицу и проверяет ее
func Validate(req *models.UpsertRateTableRequest) (*domain.RateTable, error) {
	if req.SubjectID == "" {
		return nil, fmt.Errorf("%w: subjectID is required", ErrInvalidInput)
	}
	if req.ShortStayThreshold < 0 {
		return nil, fmt.Errorf("%w: shortStayThreshold must not be negative", ErrInvalidInput)
	}

	table, err := req.ToDomainRateTable()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return table, nil
}
