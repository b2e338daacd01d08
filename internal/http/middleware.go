package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/rogerio-castellano/expiry-tracker/internal/auth"
	rl "github.com/rogerio-castellano/expiry-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/expiry-tracker/internal/metrics"
	"golang.org/x/time/rate"
)

// AuthMiddleware rejects requests without a valid bearer token. Handlers
// re-derive the caller's user id from the same header.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization := r.Header.Get("Authorization")
		if !strings.HasPrefix(authorization, "Bearer ") {
			http.Error(w, "missing or invalid token", http.StatusUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authorization, "Bearer ")
		if _, err := auth.UserIDFromToken(tokenStr); err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ScanRateLimitMiddleware throttles the scan endpoint per user: the vision
// gateway bills per call, so one request per 2 seconds with a small burst.
func ScanRateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		userID, err := auth.UserIDFromToken(tokenStr)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		limiter := rl.GetVisitor("scan:"+userID, rate.Every(2*time.Second), 3)
		if !limiter.Allow() {
			http.Error(w, "too many scan requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

var metricsCollector *metrics.Collector

// SetMetricsCollector wires the Prometheus collector into the request
// middleware. Optional; without it requests simply go unrecorded.
func SetMetricsCollector(c *metrics.Collector) {
	metricsCollector = c
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware records request counts and latency per status code.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if metricsCollector == nil {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		metricsCollector.RecordHTTPRequest(rec.status, time.Since(start))
	})
}
