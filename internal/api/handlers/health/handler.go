package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
)

const (
	statusOK       = "ok"
	statusDegraded = "degraded"

	checkTimeout = 2 * time.Second
)

// Response состояние сервиса и его зависимостей
type Response struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}

type Handler struct {
	checks map[string]Check
	logger Logger
}

func NewHandler(checks map[string]Check, logger Logger) *Handler {
	return &Handler{
		checks: checks,
		logger: logger,
	}
}

// Handle GET /api/v1/health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := Response{Status: statusOK, Components: make(map[string]string, len(names))}
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			h.logger.Warn("GET /health - %s is unavailable: %v", name, err)
			resp.Components[name] = err.Error()
			resp.Status = statusDegraded
			continue
		}
		resp.Components[name] = statusOK
	}

	code := http.StatusOK
	if resp.Status != statusOK {
		code = http.StatusServiceUnavailable
	}
	handlers.RespondJSON(w, code, resp)
}
