package set_booking_price

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
	msgInvalidPrice       = "цена должна быть положительным числом"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgBookingNotFound    = "бронирование не найдено"
	msgAccessDenied       = "цену может назначить только администратор"
	msgPriceLocked        = "цена подтвержденного бронирования не меняется"
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

// Handle PUT /api/v1/bookings/{bookingId}/price
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /bookings/{id}/price - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.SetPriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/price - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	booking, err := h.service.SetQuotedPrice(r.Context(), bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id}/price - Invalid price: booking_id=%s, total=%v", bookingID, req.TotalPrice)
			handlers.RespondBadRequest(w, msgInvalidPrice)
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PUT /bookings/{id}/price - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/price - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, bookings.ErrPriceLocked):
			h.logger.Warn("PUT /bookings/{id}/price - Price locked: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgPriceLocked)
		case errors.Is(err, bookings.ErrPersistence):
			h.logger.Error("PUT /bookings/{id}/price - Storage unavailable: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondServiceUnavailable(w)
		default:
			h.logger.Error("PUT /bookings/{id}/price - Failed to set price: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id}/price - Price set: booking_id=%s, total=%.2f", bookingID, booking.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
