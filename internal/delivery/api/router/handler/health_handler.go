package handler

import (
	"net/http"

	"bpaml/config"
	"bpaml/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports process liveness.
type HealthHandler struct {
	serviceName string
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{serviceName: cfg.Env.ServiceName}
}

// HealthCheck always answers ok while the server accepts requests
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": h.serviceName,
	})
}
