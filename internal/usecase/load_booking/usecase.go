package load_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-TravelBooking/internal/pricing"
)

// UseCase use case загрузки бронирования для редактирования
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, catalogRepo CatalogRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Execute загружает бронирование и контекст цены.
// Владелец, участник группы и администратор имеют доступ.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("LoadBooking: booking=%s, user=%s", req.BookingID, req.UserID)

	// 1. Валидация входных данных
	if req.BookingID == "" || req.UserID == "" {
		uc.logger.Warn("LoadBooking: bookingID and userID are required")
		return nil, fmt.Errorf("%w: bookingID and userID are required", ErrInvalidInput)
	}

	// 2. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("LoadBooking: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("LoadBooking: failed to get booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrPersistence, err)
	}

	// 3. Проверяем права доступа
	if !req.IsAdmin && !booking.IsOwner(req.UserID) && !booking.HasParticipant(req.UserID) {
		uc.logger.Warn("LoadBooking: access denied for user=%s to booking id=%s", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	// 4. Флаг подтвержденной цены вычисляется до любых расчетов
	resp := &Response{
		Booking:           booking,
		HasConfirmedTotal: booking.HasConfirmedTotal(),
	}

	// 5. Получаем предмет каталога
	subject, err := uc.catalogRepo.GetSubject(ctx, booking.Subject)
	switch {
	case err == nil:
		resp.Subject = subject
	case errors.Is(err, catalogRepo.ErrSubjectNotFound):
		uc.logger.Warn("LoadBooking: subject %s/%s not found in catalog", booking.Subject.Kind, booking.Subject.ID)
	case resp.HasConfirmedTotal:
		// Цена уже зафиксирована, каталог нужен только для отображения
		uc.logger.Warn("LoadBooking: catalog unavailable for booking id=%s: %v", booking.ID, err)
	default:
		uc.logger.Error("LoadBooking: failed to get subject for booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to get subject: %v", ErrPersistence, err)
	}

	// 6. Цена за человека
	travelers := booking.PersonalDetails.TravelerCount
	if resp.HasConfirmedTotal {
		resp.DisplayPricePerPerson = pricing.DerivePricePerPersonForDisplay(booking.TotalPrice, travelers)
	} else if resp.Subject != nil {
		resp.CatalogPricePerPerson = pricing.CatalogPrice(resp.Subject.CatalogPricePerPerson())
		resp.ProvisionalTotal = pricing.ProvisionalTotal(resp.CatalogPricePerPerson, domain.NormalizeTravelerCount(travelers))
	}

	uc.logger.Info("LoadBooking: loaded booking id=%s, status=%s, confirmedTotal=%t",
		booking.ID, booking.Status, resp.HasConfirmedTotal)
	return resp, nil
}
