package get_subject_bookings

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TravelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TravelBooking/internal/service/bookings"
	"github.com/m04kA/SMC-TravelBooking/internal/service/bookings/models"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidFilter = "некорректный предмет бронирования или фильтр статусов"
	msgAccessDenied  = "доступно только администраторам"
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

// Handle GET /api/v1/subjects/{subjectKind}/{subjectId}/bookings?status=pending,confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	subjectKind, subjectID := vars["subjectKind"], vars["subjectId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /subjects/{kind}/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetSubjectBookingsRequest{
		UserID:      userID,
		SubjectKind: subjectKind,
		SubjectID:   subjectID,
		Statuses:    parseStatuses(r.URL.Query()["status"]),
	}

	list, err := h.service.GetSubjectBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /subjects/{kind}/{id}/bookings - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /subjects/{kind}/{id}/bookings - Invalid filter: %s/%s, error=%v", subjectKind, subjectID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
		case errors.Is(err, bookings.ErrPersistence):
			h.logger.Error("GET /subjects/{kind}/{id}/bookings - Storage unavailable: error=%v", err)
			handlers.RespondServiceUnavailable(w)
		default:
			h.logger.Error("GET /subjects/{kind}/{id}/bookings - Failed to get bookings: %s/%s, error=%v", subjectKind, subjectID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /subjects/{kind}/{id}/bookings - Retrieved %d bookings: %s/%s", len(list.Bookings), subjectKind, subjectID)
	handlers.RespondJSON(w, http.StatusOK, list)
}

// parseStatuses принимает ?status=a&status=b и ?status=a,b
func parseStatuses(raw []string) []string {
	var statuses []string
	for _, value := range raw {
		for _, s := range strings.Split(value, ",") {
			if s = strings.TrimSpace(s); s != "" {
				statuses = append(statuses, s)
			}
		}
	}
	return statuses
}
