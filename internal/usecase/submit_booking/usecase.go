package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TravelBooking/internal/integrations/notifier"
	"github.com/m04kA/SMC-TravelBooking/internal/pricing"
	"github.com/m04kA/SMC-TravelBooking/internal/sharing"
	"github.com/m04kA/SMC-TravelBooking/internal/usecase/load_booking"
)

const notificationChannel = "email"

// UseCase use case отправки формы бронирования
type UseCase struct {
	loader       BookingLoader
	bookingRepo  BookingRepository
	minter       GroupMinter
	notifier     Notifier
	metrics      Metrics
	settings     Settings
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	loader BookingLoader,
	bookingRepo BookingRepository,
	minter GroupMinter,
	notifier Notifier,
	metrics Metrics,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		loader:       loader,
		bookingRepo:  bookingRepo,
		minter:       minter,
		notifier:     notifier,
		metrics:      metrics,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute валидирует форму, фиксирует итоговую цену, подтверждает бронирование
// и при первой отправке выпускает ссылку для группы.
// При ошибке валидации ничего не сохраняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: booking=%s, user=%s", req.BookingID, req.UserID)

	// 1. Валидация входных данных
	if req.BookingID == "" || req.UserID == "" {
		uc.logger.Warn("SubmitBooking: bookingID and userID are required")
		return nil, fmt.Errorf("%w: bookingID and userID are required", ErrInvalidInput)
	}

	details := req.Form.PersonalDetails()
	if verr := domain.ValidateSubmission(details, req.Form.CustomRequests); verr.HasErrors() {
		uc.logger.Warn("SubmitBooking: validation failed for booking id=%s: %v", req.BookingID, verr)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, verr)
	}

	// 2. Загружаем бронирование тем же путем, что и форма редактирования.
	// Флаг подтвержденной цены вычисляется там до любых расчетов.
	loaded, err := uc.loader.Execute(ctx, &load_booking.Request{BookingID: req.BookingID, UserID: req.UserID})
	if err != nil {
		return nil, uc.mapLoadError(req.BookingID, err)
	}
	booking := loaded.Booking

	// 3. Отправлять может только владелец
	if !booking.IsOwner(req.UserID) {
		uc.logger.Warn("SubmitBooking: user=%s is not the owner of booking id=%s", req.UserID, booking.ID)
		return nil, ErrAccessDenied
	}

	// 4. Путешественников не меньше, чем уже вступивших участников
	if joined := booking.JoinedCount(); details.TravelerCount < joined {
		verr := domain.NewValidationError()
		verr.Add("travelerCount", fmt.Sprintf("at least %d travelers have already joined", joined))
		uc.logger.Warn("SubmitBooking: travelerCount=%d below joined=%d for booking id=%s",
			details.TravelerCount, joined, booking.ID)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, verr)
	}

	// 5. Итоговая цена
	total, err := pricing.ResolveFinalTotalPrice(pricing.ResolveInput{
		HasConfirmedTotal: loaded.HasConfirmedTotal,
		ExistingTotal:     booking.TotalPrice,
		PricePerPerson:    loaded.CatalogPricePerPerson,
		TravelerCount:     details.TravelerCount,
	})
	if err != nil {
		uc.metrics.PriceUnavailableInc()
		uc.logger.Warn("SubmitBooking: no price for booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: booking id=%s", ErrPriceUnavailable, booking.ID)
	}

	// 6. Переводим статус в confirmed
	wasConfirmed := booking.Status == domain.StatusConfirmed
	if err := promote(booking); err != nil {
		uc.logger.Warn("SubmitBooking: booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}

	now := uc.timeProvider.Now()
	booking.PersonalDetails = details
	booking.TotalPrice = total
	if req.Form.CustomRequests != nil {
		booking.CustomRequests = req.Form.CustomRequests
	}

	// 7. Группа создается один раз, при первой отправке
	token, minted, err := uc.minter.EnsureGroup(booking, sharing.ParticipantInput{
		UserID: booking.OwnerUserID,
		Name:   details.Name,
		Email:  details.Email,
		Phone:  details.Phone,
	}, now)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to create group for booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to create group: %v", ErrInternal, err)
	}

	// 8. Сохраняем одним частичным обновлением
	patch := domain.BookingPatch{
		Status:          &booking.Status,
		PersonalDetails: &booking.PersonalDetails,
		CustomRequests:  req.Form.CustomRequests,
		TotalPrice:      &total,
		UpdatedAt:       now,
	}
	if minted {
		patch.ShareToken = booking.ShareToken
		patch.GroupID = booking.GroupID
		patch.Participants = booking.Participants
	}

	if err := uc.bookingRepo.Update(ctx, booking.ID, patch); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("SubmitBooking: booking id=%s disappeared before update", booking.ID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("SubmitBooking: failed to update booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to update booking: %v", ErrPersistence, err)
	}
	uc.metrics.BookingSubmitted(string(booking.Status), minted)

	resp := &Response{
		BookingID:   booking.ID,
		Status:      booking.Status,
		TotalPrice:  total,
		ShareToken:  token,
		ShareURL:    sharing.ShareURL(uc.settings.PublicBaseURL, token),
		ChatLink:    notifier.ChatLink(uc.settings.AgencyPhone, notifier.BookingChatText(booking.ID, details.Name)),
		TokenMinted: minted,
	}

	// 9. Уведомление отправляется только при первом подтверждении и не влияет на результат
	if !wasConfirmed || minted {
		uc.notify(ctx, loaded, resp)
	}

	uc.logger.Info("SubmitBooking: booking id=%s submitted, status=%s, total=%.2f, tokenMinted=%t",
		booking.ID, booking.Status, total, minted)
	return resp, nil
}

func (uc *UseCase) mapLoadError(bookingID string, err error) error {
	switch {
	case errors.Is(err, load_booking.ErrBookingNotFound):
		return ErrBookingNotFound
	case errors.Is(err, load_booking.ErrAccessDenied):
		return ErrAccessDenied
	case errors.Is(err, load_booking.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		uc.logger.Error("SubmitBooking: failed to load booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: failed to load booking: %v", ErrPersistence, err)
	}
}

func (uc *UseCase) notify(ctx context.Context, loaded *load_booking.Response, resp *Response) {
	booking := loaded.Booking
	confirmation := notifier.Confirmation{
		BookingID:      booking.ID,
		Status:         string(booking.Status),
		RecipientName:  booking.PersonalDetails.Name,
		RecipientEmail: booking.PersonalDetails.Email,
		TravelerCount:  booking.PersonalDetails.TravelerCount,
		ChildCount:     booking.PersonalDetails.ChildCount,
		TotalPrice:     resp.TotalPrice,
		DepartureDate:  booking.PersonalDetails.DepartureDate,
		ShareURL:       resp.ShareURL,
		ChatLink:       resp.ChatLink,
	}
	if loaded.Subject != nil {
		confirmation.SubjectTitle = loaded.Subject.Title
	}

	if err := uc.notifier.NotifyConfirmed(ctx, confirmation); err != nil {
		uc.metrics.NotificationFailed(notificationChannel)
		uc.logger.Warn("SubmitBooking: confirmation for booking id=%s not delivered: %v", booking.ID, err)
	}
}

// promote переводит бронирование в confirmed.
// Повторная отправка подтвержденного бронирования статус не меняет.
func promote(b *domain.Booking) error {
	if b.IsFinal() {
		return &domain.TransitionError{From: b.Status, To: domain.StatusConfirmed}
	}
	if b.Status == domain.StatusConfirmed {
		return nil
	}
	if b.Status == domain.StatusDraft {
		if err := b.TransitionTo(domain.StatusPending); err != nil {
			return err
		}
	}
	return b.TransitionTo(domain.StatusConfirmed)
}
