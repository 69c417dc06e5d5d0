package join_group

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TravelBooking/internal/sharing"
	"github.com/m04kA/SMC-TravelBooking/pkg/ptr"
)

// UseCase use case вступления в группу по ссылке
type UseCase struct {
	bookingRepo  BookingRepository
	userClient   UserServiceClient
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, userClient UserServiceClient, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		userClient:   userClient,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute добавляет пользователя в группу подтвержденного бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("JoinGroup: user=%s", req.UserID)

	// 1. Валидация входных данных
	if req.ShareToken == "" || req.UserID == "" {
		uc.logger.Warn("JoinGroup: share token and userID are required")
		return nil, fmt.Errorf("%w: share token and userID are required", ErrInvalidInput)
	}

	// 2. Находим бронирование по токену
	booking, err := uc.bookingRepo.GetByShareToken(ctx, req.ShareToken)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("JoinGroup: no booking for the given share token")
			return nil, ErrGroupNotFound
		}
		uc.logger.Error("JoinGroup: failed to get booking by share token: %v", err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrPersistence, err)
	}

	// 3. Профиль участника, при недоступности UserService берем данные из запроса
	input := uc.participantInput(ctx, req)

	// 4. Проверяем правила вступления
	now := uc.timeProvider.Now()
	participant, err := sharing.AddParticipant(booking, input, now)
	if err != nil {
		uc.logger.Warn("JoinGroup: user=%s cannot join booking id=%s: %v", req.UserID, booking.ID, err)
		return nil, mapSharingError(err)
	}

	// 5. Добавляем участника, хранилище повторно проверяет дубликат
	if err := uc.bookingRepo.AppendParticipant(ctx, booking.ID, participant, now); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrParticipantExists):
			uc.logger.Warn("JoinGroup: user=%s already joined booking id=%s", req.UserID, booking.ID)
			return nil, ErrAlreadyJoined
		case errors.Is(err, bookingRepo.ErrNotConfirmed):
			uc.logger.Warn("JoinGroup: booking id=%s is no longer confirmed", booking.ID)
			return nil, ErrNotConfirmed
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return nil, ErrGroupNotFound
		}
		uc.logger.Error("JoinGroup: failed to append participant to booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to append participant: %v", ErrPersistence, err)
	}

	uc.metrics.GroupJoined()
	uc.logger.Info("JoinGroup: user=%s joined booking id=%s", req.UserID, booking.ID)

	return &Response{
		BookingID:        booking.ID,
		GroupID:          ptr.Value(booking.GroupID),
		Participant:      participant,
		ParticipantCount: len(booking.Participants),
	}, nil
}

func (uc *UseCase) participantInput(ctx context.Context, req *Request) sharing.ParticipantInput {
	input := sharing.ParticipantInput{
		UserID: req.UserID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
	}

	profile, err := uc.userClient.GetProfileWithGracefulDegradation(ctx, req.UserID)
	if err != nil {
		uc.logger.Warn("JoinGroup: using request data for user=%s: %v", req.UserID, err)
		return input
	}

	if profile.DisplayName != "" {
		input.Name = profile.DisplayName
	}
	if profile.Email != "" {
		input.Email = profile.Email
	}
	if profile.Phone != "" {
		input.Phone = profile.Phone
	}
	return input
}

func mapSharingError(err error) error {
	switch {
	case errors.Is(err, sharing.ErrNotConfirmed):
		return ErrNotConfirmed
	case errors.Is(err, sharing.ErrAlreadyJoined):
		return ErrAlreadyJoined
	default:
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
}
