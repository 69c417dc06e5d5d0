package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TravelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	submitBooking "github.com/m04kA/SMC-TravelBooking/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные бронирования"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgBookingNotFound    = "бронирование не найдено"
	msgAccessDenied       = "отправить бронирование может только его владелец"
	msgPriceUnavailable   = "не удалось определить итоговую цену, свяжитесь с агентством"
	msgInvalidTransition  = "бронирование в этом статусе нельзя отправить"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/submit - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/submit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, userID)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/submit - Failed to parse dates: %v", err)
		if verr := domain.AsValidationError(err); verr != nil {
			handlers.RespondValidationError(w, verr)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case domain.AsValidationError(err) != nil:
			h.logger.Warn("POST /bookings/{id}/submit - Validation failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondValidationError(w, domain.AsValidationError(err))

		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/submit - Invalid input: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, submitBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/submit - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, submitBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/submit - Access denied: booking_id=%s, user_id=%s", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, submitBooking.ErrPriceUnavailable):
			h.logger.Warn("POST /bookings/{id}/submit - Price unavailable: booking_id=%s", bookingID)
			handlers.RespondUnprocessable(w, msgPriceUnavailable)

		case errors.Is(err, submitBooking.ErrInvalidTransition):
			h.logger.Warn("POST /bookings/{id}/submit - Invalid transition: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, submitBooking.ErrPersistence):
			h.logger.Error("POST /bookings/{id}/submit - Storage unavailable: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /bookings/{id}/submit - Failed to submit booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/submit - Booking submitted: booking_id=%s, status=%s, total=%.2f",
		result.BookingID, result.Status, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
