package monitoring

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Metrics accumulates request counters for the /metrics endpoint.
type Metrics struct {
	mu            sync.RWMutex
	RequestCount  int64            `json:"request_count"`
	ErrorCount    int64            `json:"error_count"`
	StatusCodes   map[string]int64 `json:"status_codes"`
	Endpoints     map[string]int64 `json:"endpoint_calls"`
	StartTime     time.Time        `json:"start_time"`
	LastRequest   time.Time        `json:"last_request"`
	totalDuration time.Duration
}

func NewMetrics() *Metrics {
	return &Metrics{
		StatusCodes: make(map[string]int64),
		Endpoints:   make(map[string]int64),
		StartTime:   time.Now(),
	}
}

func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()

		m.mu.Lock()
		m.RequestCount++
		m.LastRequest = time.Now()
		m.totalDuration += time.Since(start)
		m.StatusCodes[strconv.Itoa(status)]++
		m.Endpoints[c.Request.Method+" "+c.FullPath()]++
		if status >= http.StatusInternalServerError {
			m.ErrorCount++
		}
		m.mu.Unlock()
	}
}

func (m *Metrics) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.mu.RLock()
		defer m.mu.RUnlock()

		avg := time.Duration(0)
		if m.RequestCount > 0 {
			avg = m.totalDuration / time.Duration(m.RequestCount)
		}

		c.JSON(http.StatusOK, gin.H{
			"request_count":   m.RequestCount,
			"error_count":     m.ErrorCount,
			"status_codes":    m.StatusCodes,
			"endpoint_calls":  m.Endpoints,
			"avg_duration_ms": float64(avg.Microseconds()) / 1000.0,
			"uptime_seconds":  time.Since(m.StartTime).Seconds(),
			"last_request":    m.LastRequest,
		})
	}
}
