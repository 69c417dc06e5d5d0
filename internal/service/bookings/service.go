package bookings

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TravelBooking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	admins       AdminChecker
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	admins AdminChecker,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		admins:       admins,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Доступ есть у владельца, участника группы и администратора.
// Токен приглашения виден только владельцу и администратору.
func (s *Service) GetByID(ctx context.Context, id string, userID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, userID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	isAdmin := s.admins.IsAdmin(userID)
	if !isAdmin && !booking.IsOwner(userID) && !booking.HasParticipant(userID) {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	resp := models.FromDomainBooking(booking)
	if !isAdmin && !booking.IsOwner(userID) {
		resp.ShareToken = nil
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return resp, nil
}

// GetUserBookings получает бронирования пользователя: созданные им и те, где он участник
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s, status=%v", req.UserID, req.Status)

	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	var status domain.BookingStatus
	if req.Status != nil {
		parsed, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = parsed
	}

	list, err := s.bookingRepo.ListByUser(ctx, req.UserID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrPersistence, err)
	}

	filtered := make([]*domain.Booking, 0, len(list))
	for _, b := range list {
		if status != "" && b.Status != status {
			continue
		}
		if !b.IsOwner(req.UserID) {
			b.ShareToken = nil
		}
		filtered = append(filtered, b)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", len(filtered), req.UserID)
	return models.FromDomainBookingList(filtered), nil
}

// GetSubjectBookings получает бронирования тура, впечатления или услуги
// Доступно только администраторам
func (s *Service) GetSubjectBookings(ctx context.Context, req *models.GetSubjectBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetSubjectBookings: fetching bookings for subject=%s/%s, user=%s, statuses=%v",
		req.SubjectKind, req.SubjectID, req.UserID, req.Statuses)

	if !s.admins.IsAdmin(req.UserID) {
		s.logger.Warn("GetSubjectBookings: user=%s is not an admin", req.UserID)
		return nil, ErrAccessDenied
	}

	kind, err := domain.ParseSubjectKind(req.SubjectKind)
	if err != nil || req.SubjectID == "" {
		s.logger.Warn("GetSubjectBookings: invalid subject %s/%s", req.SubjectKind, req.SubjectID)
		return nil, fmt.Errorf("%w: invalid subject", ErrInvalidInput)
	}

	statuses := domain.ActiveStatuses
	if len(req.Statuses) > 0 {
		statuses = make([]domain.BookingStatus, 0, len(req.Statuses))
		for _, raw := range req.Statuses {
			status, err := domain.ParseBookingStatus(raw)
			if err != nil {
				s.logger.Warn("GetSubjectBookings: invalid status=%s", raw)
				return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, raw)
			}
			statuses = append(statuses, status)
		}
	}

	list, err := s.bookingRepo.ListBySubject(ctx, domain.SubjectRef{Kind: kind, ID: req.SubjectID}, statuses)
	if err != nil {
		s.logger.Error("GetSubjectBookings: repository error for subject=%s/%s: %v", kind, req.SubjectID, err)
		return nil, fmt.Errorf("%w: GetSubjectBookings - repository error: %v", ErrPersistence, err)
	}

	s.logger.Info("GetSubjectBookings: successfully fetched %d bookings for subject=%s/%s", len(list), kind, req.SubjectID)
	return models.FromDomainBookingList(list), nil
}

// ChangeStatus меняет статус бронирования
// Владелец может отправить черновик на рассмотрение и отменить бронирование.
// Администратор может выполнить любой допустимый переход, кроме подтверждения:
// подтверждение возможно только через отправку формы, где фиксируется цена и выпускается ссылка группы.
func (s *Service) ChangeStatus(ctx context.Context, bookingID string, req *models.ChangeStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("ChangeStatus: booking id=%s to status=%s by user=%s", bookingID, req.Status, req.UserID)

	next, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("ChangeStatus: invalid status=%s for booking id=%s", req.Status, bookingID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, "ChangeStatus", bookingID)
	if err != nil {
		return nil, err
	}

	// Проверяем права доступа
	if !s.admins.IsAdmin(req.UserID) {
		if !booking.IsOwner(req.UserID) {
			s.logger.Warn("ChangeStatus: access denied for user=%s to booking id=%s", req.UserID, bookingID)
			return nil, ErrAccessDenied
		}
		if next != domain.StatusPending && next != domain.StatusCancelled {
			s.logger.Warn("ChangeStatus: owner=%s cannot set status=%s on booking id=%s", req.UserID, next, bookingID)
			return nil, ErrAccessDenied
		}
	}

	if next == domain.StatusConfirmed {
		s.logger.Warn("ChangeStatus: booking id=%s can only be confirmed through submit", bookingID)
		return nil, fmt.Errorf("%w: confirmation requires submit", ErrInvalidTransition)
	}

	if err := booking.TransitionTo(next); err != nil {
		s.logger.Warn("ChangeStatus: booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}
	booking.UpdatedAt = s.timeProvider.Now()

	patch := domain.BookingPatch{Status: &booking.Status, UpdatedAt: booking.UpdatedAt}
	if err := s.update(ctx, "ChangeStatus", bookingID, patch); err != nil {
		return nil, err
	}

	s.logger.Info("ChangeStatus: successfully updated booking id=%s to status=%s", bookingID, next)
	return models.FromDomainBooking(booking), nil
}

// SetQuotedPrice устанавливает итоговую цену, рассчитанную агентством.
// Доступно только администраторам и только до подтверждения бронирования:
// после этого цена зафиксирована и пересчету не подлежит.
func (s *Service) SetQuotedPrice(ctx context.Context, bookingID string, req *models.SetPriceRequest) (*models.BookingResponse, error) {
	s.logger.Info("SetQuotedPrice: booking id=%s, total=%.2f by user=%s", bookingID, req.TotalPrice, req.UserID)

	if !s.admins.IsAdmin(req.UserID) {
		s.logger.Warn("SetQuotedPrice: user=%s is not an admin", req.UserID)
		return nil, ErrAccessDenied
	}

	if req.TotalPrice <= 0 || math.IsInf(req.TotalPrice, 0) || math.IsNaN(req.TotalPrice) {
		s.logger.Warn("SetQuotedPrice: invalid total=%v for booking id=%s", req.TotalPrice, bookingID)
		return nil, fmt.Errorf("%w: totalPrice must be a positive number", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, "SetQuotedPrice", bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != domain.StatusDraft && booking.Status != domain.StatusPending {
		s.logger.Warn("SetQuotedPrice: booking id=%s has status=%s", bookingID, booking.Status)
		return nil, ErrPriceLocked
	}

	booking.TotalPrice = req.TotalPrice
	booking.UpdatedAt = s.timeProvider.Now()

	patch := domain.BookingPatch{TotalPrice: &booking.TotalPrice, UpdatedAt: booking.UpdatedAt}
	if err := s.update(ctx, "SetQuotedPrice", bookingID, patch); err != nil {
		return nil, err
	}

	s.logger.Info("SetQuotedPrice: successfully set total=%.2f on booking id=%s", req.TotalPrice, bookingID)
	return models.FromDomainBooking(booking), nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrPersistence, op, err)
	}
	return booking, nil
}

func (s *Service) update(ctx context.Context, op, id string, patch domain.BookingPatch) error {
	if err := s.bookingRepo.Update(ctx, id, patch); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found during update", op, id)
			return ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrPersistence, op, err)
	}
	return nil
}
