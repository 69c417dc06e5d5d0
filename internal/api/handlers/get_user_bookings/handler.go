package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TravelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TravelBooking/internal/service/bookings"
	"github.com/m04kA/SMC-TravelBooking/internal/service/bookings/models"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidStatus = "некорректный статус"
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

// Handle GET /api/v1/users/me/bookings?status=confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/me/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetUserBookingsRequest{UserID: userID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	list, err := h.service.GetUserBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /users/me/bookings - Invalid status filter: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgInvalidStatus)
		case errors.Is(err, bookings.ErrPersistence):
			h.logger.Error("GET /users/me/bookings - Storage unavailable: user_id=%s, error=%v", userID, err)
			handlers.RespondServiceUnavailable(w)
		default:
			h.logger.Error("GET /users/me/bookings - Failed to get bookings: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/me/bookings - Retrieved %d bookings: user_id=%s", len(list.Bookings), userID)
	handlers.RespondJSON(w, http.StatusOK, list)
}
