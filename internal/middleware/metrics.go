package middleware

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	domain "github.com/bryanwahyu/feedback-analyzer/internal/domain/feedback"
)

// Metrics stores process-wide request and analysis counters.
type Metrics struct {
	RequestsTotal      uint64
	RequestsInProgress uint64
	RequestsSuccess    uint64
	RequestsFailed     uint64
	FeedbackStored     uint64
	Rejected           uint64
	AnalysisFailures   uint64
	StorageFailures    uint64
	StartTime          time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{StartTime: time.Now()}
}

// ObserveStored counts one successfully persisted feedback record.
func (m *Metrics) ObserveStored() {
	atomic.AddUint64(&m.FeedbackStored, 1)
}

// ObserveFailure counts a handler failure by kind.
func (m *Metrics) ObserveFailure(kind domain.Kind) {
	switch kind {
	case domain.KindMethodNotAllowed, domain.KindMissingField:
		atomic.AddUint64(&m.Rejected, 1)
	case domain.KindAnalysisFailure:
		atomic.AddUint64(&m.AnalysisFailures, 1)
	case domain.KindStorageFailure:
		atomic.AddUint64(&m.StorageFailures, 1)
	}
}

// Snapshot returns current metrics
func (m *Metrics) Snapshot() map[string]interface{} {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return map[string]interface{}{
		"requests_total":       atomic.LoadUint64(&m.RequestsTotal),
		"requests_in_progress": atomic.LoadUint64(&m.RequestsInProgress),
		"requests_success":     atomic.LoadUint64(&m.RequestsSuccess),
		"requests_failed":      atomic.LoadUint64(&m.RequestsFailed),
		"feedback_stored":      atomic.LoadUint64(&m.FeedbackStored),
		"feedback_rejected":    atomic.LoadUint64(&m.Rejected),
		"analysis_failures":    atomic.LoadUint64(&m.AnalysisFailures),
		"storage_failures":     atomic.LoadUint64(&m.StorageFailures),
		"uptime_seconds":       time.Since(m.StartTime).Seconds(),
		"memory": map[string]interface{}{
			"alloc_bytes":       mem.Alloc,
			"total_alloc_bytes": mem.TotalAlloc,
			"sys_bytes":         mem.Sys,
			"num_gc":            mem.NumGC,
		},
		"goroutines": runtime.NumGoroutine(),
	}
}

// Middleware tracks request metrics
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddUint64(&m.RequestsTotal, 1)
		atomic.AddUint64(&m.RequestsInProgress, 1)
		defer atomic.AddUint64(&m.RequestsInProgress, ^uint64(0))

		wrapped := wrapWriter(w)
		next.ServeHTTP(wrapped, r)

		if wrapped.statusCode >= 200 && wrapped.statusCode < 400 {
			atomic.AddUint64(&m.RequestsSuccess, 1)
		} else {
			atomic.AddUint64(&m.RequestsFailed, 1)
		}
	})
}

// Handler returns metrics as JSON
func (m *Metrics) Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m.Snapshot())
}
