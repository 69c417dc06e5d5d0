package change_booking_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TravelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TravelBooking/internal/service/bookings"
	"github.com/m04kA/SMC-TravelBooking/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgBookingNotFound    = "бронирование не найдено"
	msgAccessDenied       = "нет прав на изменение статуса"
	msgInvalidTransition  = "переход в этот статус недопустим"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.ChangeStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	booking, err := h.service.ChangeStatus(r.Context(), bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid status: booking_id=%s, status=%s", bookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/status - Access denied: booking_id=%s, user_id=%s", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid transition: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondConflict(w, msgInvalidTransition)
		case errors.Is(err, bookings.ErrPersistence):
			h.logger.Error("PATCH /bookings/{id}/status - Storage unavailable: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondServiceUnavailable(w)
		default:
			h.logger.Error("PATCH /bookings/{id}/status - Failed to change status: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/status - Status changed: booking_id=%s, status=%s", bookingID, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
