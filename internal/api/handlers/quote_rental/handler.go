package quote_rental

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
	quoteRental "github.com/m04kA/SMC-TravelBooking/internal/usecase/quote_rental"
)

const (
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput      = "некорректный период аренды"
	msgRateTableNotFound = "для услуги нет тарифной таблицы"
)

type Handler struct {
	useCase QuoteRentalUseCase
	logger  Logger
}

func NewHandler(useCase QuoteRentalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/subjects/{subjectId}/rental-quote?start=2025-07-10&end=2025-07-15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	subjectID := mux.Vars(r)["subjectId"]
	query := r.URL.Query()

	start, err := handlers.ParseOptionalDate(query.Get("start"))
	if err != nil {
		h.logger.Warn("GET /subjects/{id}/rental-quote - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	end, err := handlers.ParseOptionalDate(query.Get("end"))
	if err != nil {
		h.logger.Warn("GET /subjects/{id}/rental-quote - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &quoteRental.Request{
		SubjectID: subjectID,
		Start:     start,
		End:       end,
	})
	if err != nil {
		switch {
		case errors.Is(err, quoteRental.ErrInvalidInput):
			h.logger.Warn("GET /subjects/{id}/rental-quote - Invalid input: subject_id=%s, error=%v", subjectID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, quoteRental.ErrRateTableNotFound):
			h.logger.Warn("GET /subjects/{id}/rental-quote - Rate table not found: subject_id=%s", subjectID)
			handlers.RespondNotFound(w, msgRateTableNotFound)
		case errors.Is(err, quoteRental.ErrPersistence):
			h.logger.Error("GET /subjects/{id}/rental-quote - Storage unavailable: subject_id=%s, error=%v", subjectID, err)
			handlers.RespondServiceUnavailable(w)
		default:
			h.logger.Error("GET /subjects/{id}/rental-quote - Failed to quote: subject_id=%s, error=%v", subjectID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if !result.Computable {
		h.logger.Info("GET /subjects/{id}/rental-quote - Awaiting valid dates: subject_id=%s", subjectID)
	} else {
		h.logger.Info("GET /subjects/{id}/rental-quote - Quoted: subject_id=%s, total=%.2f", subjectID, result.Quote.TotalPrice)
	}
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
