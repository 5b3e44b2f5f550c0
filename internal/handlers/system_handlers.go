package handlers

import (
	"context"
	"errors"
	"net/http"
	"runtime"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"

	"renti/internal/caching"
	"renti/internal/common"
	"renti/internal/jobs/background"
)

const Version = "1.0.0"

// JobRunner is the part of the scheduler the system endpoints use.
type JobRunner interface {
	GetJobStatus() []background.JobStatus
	RunNow(name string) error
}

// SystemHandlers handles health, job and demo reset endpoints.
type SystemHandlers struct {
	cache     caching.CacheService
	scheduler JobRunner
	reset     func(ctx context.Context)
	clock     clockwork.Clock
	startedAt time.Time
}

func NewSystemHandlers(cache caching.CacheService, scheduler JobRunner, reset func(ctx context.Context), clock clockwork.Clock) *SystemHandlers {
	return &SystemHandlers{
		cache:     cache,
		scheduler: scheduler,
		reset:     reset,
		clock:     clock,
		startedAt: clock.Now(),
	}
}

// HealthStatus represents the overall health status
type HealthStatus struct {
	Status     string            `json:"status"`
	Timestamp  string            `json:"timestamp"`
	Services   map[string]string `json:"services"`
	Uptime     string            `json:"uptime"`
	Version    string            `json:"version"`
	Goroutines int               `json:"goroutines"`
}

// HealthCheck reports the cache backend state. A failing cache degrades the
// service, it does not take it down.
func (h *SystemHandlers) HealthCheck(c echo.Context) error {
	health := &HealthStatus{
		Status:     "healthy",
		Timestamp:  h.clock.Now().UTC().Format(time.RFC3339),
		Services:   make(map[string]string),
		Uptime:     h.clock.Since(h.startedAt).Round(time.Second).String(),
		Version:    Version,
		Goroutines: runtime.NumGoroutine(),
	}

	cacheKey := "cache:" + h.cache.Backend()
	if err := h.checkCache(c.Request().Context()); err != nil {
		health.Services[cacheKey] = "unhealthy"
		health.Status = "degraded"
	} else {
		health.Services[cacheKey] = "healthy"
	}

	statusCode := http.StatusOK
	if health.Status == "degraded" {
		statusCode = http.StatusPartialContent
	}
	return c.JSON(statusCode, health)
}

func (h *SystemHandlers) checkCache(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return h.cache.Ping(ctx)
}

// ReadinessCheck determines if the application is ready to serve traffic
func (h *SystemHandlers) ReadinessCheck(c echo.Context) error {
	if err := h.checkCache(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status":  "not_ready",
			"message": "Cache unavailable",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ready",
		"message": "All systems operational",
	})
}

func (h *SystemHandlers) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "alive",
		"timestamp": h.clock.Now().UTC().Format(time.RFC3339),
	})
}

func (h *SystemHandlers) JobStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"jobs": h.scheduler.GetJobStatus(),
	})
}

// RunJob triggers a background job immediately.
func (h *SystemHandlers) RunJob(c echo.Context) error {
	name := c.Param("name")
	if err := h.scheduler.RunNow(name); err != nil {
		if errors.Is(err, background.ErrUnknownJob) {
			return common.SendNotFoundError(c, "Job")
		}
		return respondError(c, err, "Job")
	}
	return c.JSON(http.StatusAccepted, map[string]string{
		"job":    name,
		"status": "triggered",
	})
}

// Reset discards every change and restores the demo data.
func (h *SystemHandlers) Reset(c echo.Context) error {
	h.reset(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]string{
		"status": "reset",
	})
}
