package quotes

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-TravelBooking/internal/pricing"
	"github.com/m04kA/SMC-TravelBooking/internal/service/quotes/models"
)

// Service сервис расчета стоимости туров и впечатлений
type Service struct {
	catalogRepo       CatalogRepository
	childDiscountRate float64
	logger            Logger
}

// NewService создает новый экземпляр сервиса расчета стоимости
func NewService(catalogRepo CatalogRepository, childDiscountRate float64, logger Logger) *Service {
	return &Service{
		catalogRepo:       catalogRepo,
		childDiscountRate: childDiscountRate,
		logger:            logger,
	}
}

// QuoteItem считает стоимость для группы по цене из каталога.
// Некорректные количества путешественников приводятся к допустимым.
func (s *Service) QuoteItem(ctx context.Context, req *models.ItemQuoteRequest) (*models.ItemQuoteResponse, error) {
	s.logger.Info("QuoteItem: subject=%s/%s, travelers=%d, children=%d",
		req.SubjectKind, req.SubjectID, req.Travelers, req.Children)

	kind, err := domain.ParseSubjectKind(req.SubjectKind)
	if err != nil || req.SubjectID == "" {
		s.logger.Warn("QuoteItem: invalid subject %s/%s", req.SubjectKind, req.SubjectID)
		return nil, fmt.Errorf("%w: invalid subject", ErrInvalidInput)
	}

	subject, err := s.catalogRepo.GetSubject(ctx, domain.SubjectRef{Kind: kind, ID: req.SubjectID})
	if err != nil {
		if errors.Is(err, catalogRepo.ErrSubjectNotFound) {
			s.logger.Warn("QuoteItem: subject %s/%s not found", kind, req.SubjectID)
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("QuoteItem: catalog error for subject %s/%s: %v", kind, req.SubjectID, err)
		return nil, fmt.Errorf("%w: QuoteItem - catalog error: %v", ErrPersistence, err)
	}

	pricePerPerson := subject.CatalogPricePerPerson()
	if pricePerPerson <= 0 {
		s.logger.Warn("QuoteItem: subject %s/%s has no catalog price", kind, req.SubjectID)
		return nil, ErrPriceUnavailable
	}

	travelers := domain.NormalizeTravelerCount(req.Travelers)
	children := domain.NormalizeChildCount(req.Children)

	total, err := pricing.ComputeItemPrice(pricePerPerson, travelers, children, s.childDiscountRate)
	if err != nil {
		s.logger.Error("QuoteItem: malformed price for subject %s/%s: %v", kind, req.SubjectID, err)
		return nil, fmt.Errorf("%w: %v", ErrPriceUnavailable, err)
	}

	s.logger.Info("QuoteItem: subject=%s/%s, total=%.2f", kind, req.SubjectID, total)

	return &models.ItemQuoteResponse{
		SubjectKind:       string(kind),
		SubjectID:         req.SubjectID,
		Title:             subject.Title,
		PricePerPerson:    pricePerPerson,
		Travelers:         travelers,
		Children:          children,
		ChildDiscountRate: s.childDiscountRate,
		TotalPrice:        total,
	}, nil
}
