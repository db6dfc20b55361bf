package monitoring

import (
	"context"
	"sync"
	"time"
)

type HealthCheckFunc func(ctx context.Context) error

type HealthCheck struct {
	Name    string    `json:"name"`
	Status  string    `json:"status"`
	Message string    `json:"message,omitempty"`
	LastRun time.Time `json:"last_run"`
}

// HealthChecker runs registered probes on demand for the liveness endpoint.
type HealthChecker struct {
	mu     sync.RWMutex
	checks map[string]HealthCheckFunc
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{checks: make(map[string]HealthCheckFunc)}
}

func (h *HealthChecker) Register(name string, check HealthCheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[name] = check
}

// Run executes every registered check and reports overall health.
func (h *HealthChecker) Run(ctx context.Context) (string, []HealthCheck) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := "ok"
	results := make([]HealthCheck, 0, len(h.checks))
	for name, check := range h.checks {
		result := HealthCheck{Name: name, Status: "ok", LastRun: time.Now()}
		if err := check(ctx); err != nil {
			result.Status = "failing"
			result.Message = err.Error()
			status = "degraded"
		}
		results = append(results, result)
	}
	return status, results
}
