package get_rate_table

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TravelBooking/internal/service/ratetables"
)

const (
	msgInvalidSubjectID  = "некорректный ID услуги"
	msgRateTableNotFound = "тарифная таблица не найдена"
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

// Handle GET /api/v1/rate-tables/{subjectId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	subjectID := mux.Vars(r)["subjectId"]

	table, err := h.service.Get(r.Context(), subjectID)
	if err != nil {
		switch {
		case errors.Is(err, ratetables.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSubjectID)
		case errors.Is(err, ratetables.ErrRateTableNotFound):
			h.logger.Warn("GET /rate-tables/{id} - Rate table not found: subject_id=%s", subjectID)
			handlers.RespondNotFound(w, msgRateTableNotFound)
		case errors.Is(err, ratetables.ErrPersistence):
			h.logger.Error("GET /rate-tables/{id} - Storage unavailable: subject_id=%s, error=%v", subjectID, err)
			handlers.RespondServiceUnavailable(w)
		default:
			h.logger.Error("GET /rate-tables/{id} - Failed to get rate table: subject_id=%s, error=%v", subjectID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rate-tables/{id} - Rate table retrieved: subject_id=%s", subjectID)
	handlers.RespondJSON(w, http.StatusOK, table)
}
