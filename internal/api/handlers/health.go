package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/astromitra/astro-ai-go/internal/astro"
)

// HealthChecker is anything that can report its own liveness.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler reports service and dependency status.
type HealthHandler struct {
	db        HealthChecker
	redis     HealthChecker
	ephemeris HealthChecker
}

// NewHealthHandler creates a health handler. Nil checkers are reported as
// not configured rather than failing.
func NewHealthHandler(db, redis, ephemeris HealthChecker) *HealthHandler {
	return &HealthHandler{db: db, redis: redis, ephemeris: ephemeris}
}

// Health returns overall and per-dependency status.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{}
	check := func(name string, checker HealthChecker) {
		if checker == nil {
			checks[name] = "not configured"
			return
		}
		if err := checker.HealthCheck(ctx); err != nil {
			checks[name] = "unhealthy: " + err.Error()
			status = http.StatusServiceUnavailable
			return
		}
		checks[name] = "healthy"
	}
	check("database", h.db)
	check("redis", h.redis)
	check("ephemeris", h.ephemeris)

	c.JSON(status, gin.H{
		"status":          statusWord(status),
		"ruleset_version": astro.RulesetVersion,
		"checks":          checks,
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	})
}

func statusWord(status int) string {
	if status == http.StatusOK {
		return "healthy"
	}
	return "degraded"
}
