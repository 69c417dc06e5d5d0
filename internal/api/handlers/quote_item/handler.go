package quote_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TravelBooking/internal/service/quotes"
	"github.com/m04kA/SMC-TravelBooking/internal/service/quotes/models"
)

const (
	msgInvalidCount     = "количество путешественников должно быть числом"
	msgInvalidSubject   = "некорректный предмет бронирования"
	msgSubjectNotFound  = "тур или впечатление не найдены"
	msgPriceUnavailable = "цена не указана в каталоге, свяжитесь с агентством"
)

type Handler struct {
	service QuoteService
	logger  Logger
}

func NewHandler(service QuoteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/subjects/{subjectKind}/{subjectId}/quote?travelers=2&children=1
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	query := r.URL.Query()

	travelers, err := optionalInt(query.Get("travelers"))
	if err != nil {
		h.logger.Warn("GET /subjects/{kind}/{id}/quote - Invalid travelers: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCount)
		return
	}
	children, err := optionalInt(query.Get("children"))
	if err != nil {
		h.logger.Warn("GET /subjects/{kind}/{id}/quote - Invalid children: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCount)
		return
	}

	req := &models.ItemQuoteRequest{
		SubjectKind: vars["subjectKind"],
		SubjectID:   vars["subjectId"],
		Travelers:   travelers,
		Children:    children,
	}

	quote, err := h.service.QuoteItem(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, quotes.ErrInvalidInput):
			h.logger.Warn("GET /subjects/{kind}/{id}/quote - Invalid subject: %s/%s", req.SubjectKind, req.SubjectID)
			handlers.RespondBadRequest(w, msgInvalidSubject)
		case errors.Is(err, quotes.ErrSubjectNotFound):
			h.logger.Warn("GET /subjects/{kind}/{id}/quote - Subject not found: %s/%s", req.SubjectKind, req.SubjectID)
			handlers.RespondNotFound(w, msgSubjectNotFound)
		case errors.Is(err, quotes.ErrPriceUnavailable):
			h.logger.Warn("GET /subjects/{kind}/{id}/quote - Price unavailable: %s/%s", req.SubjectKind, req.SubjectID)
			handlers.RespondUnprocessable(w, msgPriceUnavailable)
		case errors.Is(err, quotes.ErrPersistence):
			h.logger.Error("GET /subjects/{kind}/{id}/quote - Storage unavailable: error=%v", err)
			handlers.RespondServiceUnavailable(w)
		default:
			h.logger.Error("GET /subjects/{kind}/{id}/quote - Failed to quote: %s/%s, error=%v", req.SubjectKind, req.SubjectID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /subjects/{kind}/{id}/quote - Quoted: %s/%s, total=%.2f", req.SubjectKind, req.SubjectID, quote.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, quote)
}

// optionalInt пустое значение дает 0, его нормализует сервис
func optionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
