// Package handler contains the HTTP handlers for the storefront API.
package handler

import (
	"storefront/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"}, "Service is healthy")
}
