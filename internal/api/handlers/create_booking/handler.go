package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TravelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-TravelBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные бронирования"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSubjectNotFound    = "тур, впечатление или услуга не найдены"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
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
			h.logger.Warn("POST /bookings - Validation failed: user_id=%s, error=%v", userID, err)
			handlers.RespondValidationError(w, domain.AsValidationError(err))

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrSubjectNotFound):
			h.logger.Warn("POST /bookings - Subject not found: %s/%s", req.SubjectKind, req.SubjectID)
			handlers.RespondNotFound(w, msgSubjectNotFound)

		case errors.Is(err, createBooking.ErrPersistence):
			h.logger.Error("POST /bookings - Storage unavailable: user_id=%s, error=%v", userID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s",
		result.Booking.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
