package upsert_rate_table

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TravelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/internal/service/ratetables"
	"github.com/m04kA/SMC-TravelBooking/internal/service/ratetables/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgAccessDenied       = "изменять тарифы могут только администраторы"
	msgSubjectNotFound    = "услуга не найдена в каталоге"
	msgPeriodsOverlap     = "сезоны пересекаются"
	msgPeriodsGap         = "сезоны должны покрывать весь год"
	msgInvalidRateTable   = "некорректная тарифная таблица"
)

type Handler struct {
	service RateTableService
	logger  Logger
}

func NewHandler(service RateTableService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/rate-tables/{subjectId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	subjectID := mux.Vars(r)["subjectId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /rate-tables/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpsertRateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rate-tables/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID
	req.SubjectID = subjectID

	table, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ratetables.ErrAccessDenied):
			h.logger.Warn("PUT /rate-tables/{id} - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, domain.ErrRateTableOverlap):
			h.logger.Warn("PUT /rate-tables/{id} - Periods overlap: subject_id=%s, error=%v", subjectID, err)
			handlers.RespondBadRequest(w, msgPeriodsOverlap)
		case errors.Is(err, domain.ErrRateTableGap):
			h.logger.Warn("PUT /rate-tables/{id} - Periods gap: subject_id=%s, error=%v", subjectID, err)
			handlers.RespondBadRequest(w, msgPeriodsGap)
		case errors.Is(err, ratetables.ErrInvalidInput):
			h.logger.Warn("PUT /rate-tables/{id} - Invalid rate table: subject_id=%s, error=%v", subjectID, err)
			handlers.RespondBadRequest(w, msgInvalidRateTable)
		case errors.Is(err, ratetables.ErrSubjectNotFound):
			h.logger.Warn("PUT /rate-tables/{id} - Subject not found: subject_id=%s", subjectID)
			handlers.RespondNotFound(w, msgSubjectNotFound)
		case errors.Is(err, ratetables.ErrPersistence):
			h.logger.Error("PUT /rate-tables/{id} - Storage unavailable: subject_id=%s, error=%v", subjectID, err)
			handlers.RespondServiceUnavailable(w)
		default:
			h.logger.Error("PUT /rate-tables/{id} - Failed to save rate table: subject_id=%s, error=%v", subjectID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /rate-tables/{id} - Rate table saved: subject_id=%s, periods=%d", subjectID, len(table.Periods))
	handlers.RespondJSON(w, http.StatusOK, table)
}
