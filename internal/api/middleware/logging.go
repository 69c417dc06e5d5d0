package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/trace"

	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
)

// RequestIDHeader заголовок с ID запроса
const RequestIDHeader = "X-Request-ID"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AccessLog пишет строку access лога на каждый запрос
func AccessLog(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now().UTC()

			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			var traceID string
			if sc := trace.SpanContextFromContext(r.Context()); sc.IsValid() {
				traceID = sc.TraceID().String()
			}

			log.Info("type: access, method: %s, url: %s, status: %d, requestID: %s, traceID: %s, latency: %s",
				r.Method,
				r.URL.Path,
				rec.status,
				requestID,
				traceID,
				time.Since(start),
			)
		})
	}
}

// Recover перехватывает панику в обработчике и отвечает 500
func Recover(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if re := recover(); re != nil {
					err, ok := re.(error)
					if !ok {
						err = fmt.Errorf("%v", re)
					}
					log.Error("type: panic, method: %s, url: %s, error: %v", r.Method, r.URL.Path, err)
					handlers.RespondInternalError(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
