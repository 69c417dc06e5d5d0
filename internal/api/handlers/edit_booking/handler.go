package edit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TravelBooking/internal/api/middleware"
	loadBooking "github.com/m04kA/SMC-TravelBooking/internal/usecase/load_booking"
)

const (
	msgMissingUserID   = "отсутствует ID пользователя"
	msgBookingNotFound = "бронирование не найдено"
	msgAccessDenied    = "нет доступа к бронированию"
	msgInvalidInput    = "некорректный запрос"
)

type Handler struct {
	useCase LoadBookingUseCase
	admins  AdminChecker
	logger  Logger
}

func NewHandler(useCase LoadBookingUseCase, admins AdminChecker, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		admins:  admins,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/edit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id}/edit - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	isAdmin := h.admins.IsAdmin(userID)
	result, err := h.useCase.Execute(r.Context(), &loadBooking.Request{
		BookingID: bookingID,
		UserID:    userID,
		IsAdmin:   isAdmin,
	})
	if err != nil {
		switch {
		case errors.Is(err, loadBooking.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{id}/edit - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, loadBooking.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/edit - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, loadBooking.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id}/edit - Access denied: booking_id=%s, user_id=%s", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, loadBooking.ErrPersistence):
			h.logger.Error("GET /bookings/{id}/edit - Storage unavailable: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondServiceUnavailable(w)
		default:
			h.logger.Error("GET /bookings/{id}/edit - Failed to load booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/edit - Booking loaded: booking_id=%s, confirmed_total=%t",
		bookingID, result.HasConfirmedTotal)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, userID, isAdmin))
}
