package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kainan/internal/monitor"
)

// MonitorHandler serves the poll-based dashboard endpoints.
type MonitorHandler struct {
	monitor *monitor.Monitor
}

// NewMonitorHandler creates a new monitor handler.
func NewMonitorHandler(m *monitor.Monitor) *MonitorHandler {
	return &MonitorHandler{monitor: m}
}

// SystemStatus godoc
// @Summary Coarse traffic and collection counters
// @Tags monitor
// @Produce json
// @Success 200 {object} monitor.SystemStatus
// @Router /api/system-status [get]
func (h *MonitorHandler) SystemStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, h.monitor.SystemStatus(c))
}

// QueueStatus godoc
// @Summary Pending orders over the trailing 30 minutes
// @Tags monitor
// @Produce json
// @Success 200 {object} monitor.QueueStatus
// @Router /api/queue-status [get]
func (h *MonitorHandler) QueueStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, h.monitor.QueueStatus(c))
}
