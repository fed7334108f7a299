package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/billboardbooker/marketplace/internal/core/ports"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready — readiness probe.
// Verifies the document backend answers before declaring the service ready.
type ReadinessHandler struct {
	store ports.DocumentStore
}

func NewReadinessHandler(store ports.DocumentStore) *ReadinessHandler {
	return &ReadinessHandler{store: store}
}

type readinessResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	if _, err := h.store.Load(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, readinessResponse{
			Status: "degraded",
			Error:  err.Error(),
		})
	}
	return c.JSON(http.StatusOK, readinessResponse{Status: "ok"})
}
