package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bryanwahyu/feedback-analyzer/internal/infra/db"
	"github.com/bryanwahyu/feedback-analyzer/internal/logging"
)

// HealthChecker defines interface for health checking
type HealthChecker interface {
	Check(ctx context.Context) error
}

// DatabaseHealthChecker opens, pings and releases one connection.
type DatabaseHealthChecker struct {
	Opener db.Opener
}

func (d *DatabaseHealthChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return db.Ping(ctx, d.Opener)
}

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// HealthStatus represents the health status
type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
}

// CheckStatus represents individual check status
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthHandler runs every checker and answers 503 when any of them fails.
// Failures are logged with the request logger so they carry the request id.
func HealthHandler(checkers map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		log := logging.FromContext(r.Context())

		health := HealthStatus{
			Status:    statusHealthy,
			Timestamp: time.Now().UTC(),
			Checks:    make(map[string]CheckStatus, len(checkers)),
		}
		for name, checker := range checkers {
			check := CheckStatus{Status: statusHealthy}
			if err := checker.Check(ctx); err != nil {
				log.Warn("health check failed", "check", name, "err", err)
				check = CheckStatus{Status: statusUnhealthy, Message: err.Error()}
				health.Status = statusUnhealthy
			}
			health.Checks[name] = check
		}

		code := http.StatusOK
		if health.Status != statusHealthy {
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(health)
	}
}

// LivenessHandler creates a liveness check handler (simplest check)
func LivenessHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
