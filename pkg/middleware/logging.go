package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/crewdeck/crewdeck/pkg/composables"
	"github.com/crewdeck/crewdeck/pkg/configuration"
)

type statusWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.written {
		w.status = code
		w.written = true
		w.ResponseWriter.WriteHeader(code)
	}
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.status = http.StatusOK
		w.written = true
	}
	return w.ResponseWriter.Write(b)
}

// WithLogger attaches a per-request *logrus.Entry (request id, method, path,
// client ip) to the context, recovers panics and logs the outcome of every
// request.
func WithLogger(logger *logrus.Logger) mux.MiddlewareFunc {
	conf := configuration.Use()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(conf.RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			ip := r.Header.Get(conf.RealIPHeader)
			if ip == "" {
				ip = r.RemoteAddr
			}

			entry := logger.WithFields(logrus.Fields{
				"requestId": requestID,
				"method":    r.Method,
				"path":      r.URL.Path,
				"ip":        ip,
			})

			ctx := composables.WithLogger(r.Context(), entry)
			ctx = composables.WithParams(ctx, &composables.Params{
				IP:        ip,
				UserAgent: r.UserAgent(),
				RequestID: requestID,
				Request:   r,
				Writer:    w,
			})

			sw := &statusWriter{ResponseWriter: w}
			defer func() {
				if rec := recover(); rec != nil {
					entry.WithField("panic", rec).Error("request panicked")
					if !sw.written {
						http.Error(sw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					}
					return
				}
				entry.WithFields(logrus.Fields{
					"status":   sw.status,
					"duration": time.Since(start).String(),
				}).Info("request completed")
			}()

			next.ServeHTTP(sw, r.WithContext(ctx))
		})
	}
}
