// Package handler contains the HTTP handlers of the console API.
package handler

import (
	"net/http"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
