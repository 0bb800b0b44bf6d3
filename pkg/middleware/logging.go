package middleware

import (
	"net/http"
	"runtime"
	"time"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/log"
)

// LogPanicMiddleware captura panics não tratados, registra o stack trace e
// responde 500 ao cliente
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)

					logger := log.L.WithFields(log.Fields{
						"correlation_id": log.GetCorrelationID(r.Context()),
						"panic_error":    err,
						"method":         r.Method,
						"path":           r.URL.Path,
					})

					logger.Error("Erro não tratado na aplicação")
					logger.WithField("stack_trace", string(stack[:stackSize])).Error("Stack trace do erro")

					http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// LoggingMiddleware registra informações sobre cada requisição HTTP, com um
// ID de correlação propagado pelo contexto
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"remote_addr":    r.RemoteAddr,
				"method":         r.Method,
				"path":           r.URL.Path,
				"query":          r.URL.RawQuery,
			}).Info("Requisição iniciada")

			next.ServeHTTP(lrw, r)

			responseTime := time.Since(startTime)
			logFields := log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"duration_ms":    responseTime.Milliseconds(),
				"status_code":    lrw.statusCode,
			}

			logger := log.L.WithFields(logFields)

			if lrw.statusCode >= 500 {
				logger.Error("Requisição finalizada com erro")
			} else if lrw.statusCode >= 400 {
				logger.Warn("Requisição finalizada com aviso")
			} else {
				logger.Info("Requisição finalizada com sucesso")
			}

			if responseTime > 500*time.Millisecond {
				log.L.WithFields(logFields).Warnf("Requisição lenta: %s", responseTime)
			}
		})
	}
}

// loggingResponseWriter é um wrapper para http.ResponseWriter para capturar o status code
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

// WriteHeader captura o status code da resposta
func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}
