package middlewares

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware tags every request with an id and logs the outcome.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		logrus.WithFields(logrus.Fields{
			"requestId": uuid.NewString(),
			"method":    r.Method,
			"path":      r.URL.Path,
			"status":    rec.status,
			"duration":  time.Since(start).String(),
		}).Info("request handled")
	})
}
