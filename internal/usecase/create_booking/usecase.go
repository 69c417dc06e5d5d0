package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/catalog"
	rateTableRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/ratetable"
	"github.com/m04kA/SMC-TravelBooking/internal/pricing"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	catalogRepo   CatalogRepository
	rateTableRepo RateTableRepository
	ids           IDGenerator
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	rateTableRepo RateTableRepository,
	ids IDGenerator,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		catalogRepo:   catalogRepo,
		rateTableRepo: rateTableRepo,
		ids:           ids,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute создает бронирование в статусе draft или pending.
// Для аренды с датами цена считается по тарифной таблице и сразу фиксируется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Status == "" {
		req.Status = domain.StatusDraft
	}
	req.Details.Normalize()

	uc.logger.Info("CreateBooking: user=%s, subject=%s/%s, status=%s",
		req.UserID, req.Subject.Kind, req.Subject.ID, req.Status)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем предмет бронирования из каталога
	subject, err := uc.catalogRepo.GetSubject(ctx, req.Subject)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrSubjectNotFound) {
			uc.logger.Warn("CreateBooking: subject %s/%s not found", req.Subject.Kind, req.Subject.ID)
			return nil, ErrSubjectNotFound
		}
		uc.logger.Error("CreateBooking: failed to get subject %s/%s: %v", req.Subject.Kind, req.Subject.ID, err)
		return nil, fmt.Errorf("%w: failed to get subject: %v", ErrPersistence, err)
	}

	now := uc.timeProvider.Now()

	booking := &domain.Booking{
		ID:              uc.ids.NewID(),
		Subject:         req.Subject,
		OwnerUserID:     req.UserID,
		Status:          req.Status,
		PersonalDetails: req.Details,
		CustomRequests:  req.CustomRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// 3. Цена аренды по тарифной таблице
	quote := uc.quoteRental(ctx, subject, req.Details)
	if quote != nil {
		booking.TotalPrice = quote.TotalPrice
	}

	// 4. Сохраняем бронирование
	if err := uc.bookingRepo.Create(ctx, booking); err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrPersistence, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, total=%.2f", booking.ID, booking.TotalPrice)

	return &Response{
		Booking:     booking,
		Subject:     subject,
		RentalQuote: quote,
	}, nil
}

// quoteRental рассчитывает цену аренды, если это возможно.
// Отсутствие таблицы или дат не является ошибкой: цена будет определена при отправке.
func (uc *UseCase) quoteRental(ctx context.Context, subject *domain.Subject, details domain.PersonalDetails) *pricing.RentalQuote {
	if !subject.IsRental() || details.DepartureDate.IsZero() || details.ReturnDate == nil {
		return nil
	}

	table, err := uc.rateTableRepo.GetBySubjectID(ctx, subject.Ref.ID)
	if err != nil {
		if errors.Is(err, rateTableRepo.ErrRateTableNotFound) {
			uc.logger.Info("CreateBooking: no rate table for subject id=%s", subject.Ref.ID)
		} else {
			uc.logger.Warn("CreateBooking: rate table unavailable for subject id=%s, creating without price: %v",
				subject.Ref.ID, err)
		}
		return nil
	}

	quote, ok := pricing.ComputeRentalPrice(table, details.DepartureDate, *details.ReturnDate)
	if !ok {
		uc.logger.Warn("CreateBooking: no rental price for subject id=%s from %s to %s",
			subject.Ref.ID, details.DepartureDate.Format(domain.DateFormat), details.ReturnDate.Format(domain.DateFormat))
		return nil
	}

	return &quote
}
