package monitoring

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

var startTime = time.Now()

// HealthChecker tracks liveness state for the simulator service.
type HealthChecker struct {
	mu        sync.RWMutex
	lastRun   time.Time
	totalRuns int
	errors    []string
}

// HealthStatus is the JSON body served by the health endpoint.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	LastRun   time.Time `json:"last_run,omitempty"`
	TotalRuns int       `json:"total_runs"`
	Uptime    string    `json:"uptime"`
	Errors    []string  `json:"errors,omitempty"`
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		errors: make([]string, 0),
	}
}

// MarkRun records a completed simulation run.
func (h *HealthChecker) MarkRun() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastRun = time.Now()
	h.totalRuns++
}

// AddError records a service-level error, keeping only the last few.
func (h *HealthChecker) AddError(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors = append(h.errors, msg)
	if len(h.errors) > 10 {
		h.errors = h.errors[len(h.errors)-10:]
	}
}

// Snapshot builds the current health status.
func (h *HealthChecker) Snapshot() HealthStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := "healthy"
	if len(h.errors) > 0 {
		status = "degraded"
	}

	return HealthStatus{
		Status:    status,
		Timestamp: time.Now(),
		LastRun:   h.lastRun,
		TotalRuns: h.totalRuns,
		Uptime:    time.Since(startTime).String(),
		Errors:    append([]string(nil), h.errors...),
	}
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	health := h.Snapshot()
	if health.Status != "healthy" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}

// StartHealthServer serves the health endpoint on its own port.
func StartHealthServer(port int, h *HealthChecker) {
	mux := http.NewServeMux()
	mux.Handle("/health", h)

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
	}()
}
