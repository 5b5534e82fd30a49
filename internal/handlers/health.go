package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const healthCheckTimeout = 2 * time.Second

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	checkUp         = "up"
	checkDown       = "down"
)

// HealthCheck pings single dependency
type HealthCheck func(context.Context) error

type healthResult struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHTTPHandler is http handler for health endpoint
type HealthHTTPHandler struct {
	checks map[string]HealthCheck
}

// NewHealthHTTPHandler builds new HealthHTTPHandler
func NewHealthHTTPHandler(checks map[string]HealthCheck) *HealthHTTPHandler {
	return &HealthHTTPHandler{checks: checks}
}

// Check pings every configured backend, 503 is returned if any of them is down
func (h *HealthHTTPHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	res := &healthResult{Status: statusHealthy, Checks: make(map[string]string, len(h.checks))}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			logrus.Warnf("health check %s failed - %v", name, err)
			res.Checks[name] = checkDown
			res.Status = statusUnhealthy
			continue
		}
		res.Checks[name] = checkUp
	}

	code := http.StatusOK
	if res.Status != statusHealthy {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, res)
}
