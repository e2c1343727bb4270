package handlers

import (
	"net/http"

	"home_security/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errInvalidSensor = "invalid sensor"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Live sensor snapshot
// @Description  Latest value per sensor; a sensor the upstream could not serve is null.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  models.LiveSnapshot
// @Router       /api/live-data [get]
func (h *Handler) liveData(c *gin.Context) {
	snapshot := h.services.Live.Snapshot(c.Request.Context())
	c.JSON(http.StatusOK, snapshot)
}

// @Summary      Historical time series
// @Description  One sensor over one UTC calendar day, oldest first. Upstream faults yield empty arrays.
// @Tags         dashboard
// @Produce      json
// @Param        sensor  query  string  false  "Logical sensor name"  default(temperature)
// @Param        date    query  string  false  "Day (YYYY-MM-DD); defaults to today (UTC)"  example(2024-03-01)
// @Success      200  {object}  models.TimeSeries
// @Failure      400  {object}  map[string]string
// @Router       /api/historical-data [get]
func (h *Handler) historicalData(c *gin.Context) {
	sensor := c.DefaultQuery("sensor", models.SensorTemperature)
	date := c.Query("date")

	series, err := h.services.History.Series(c.Request.Context(), sensor, date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidSensor})
		return
	}
	c.JSON(http.StatusOK, series)
}

// @Summary      Intrusion events for a day
// @Description  One event per motion "1" sample, oldest first.
// @Tags         security
// @Produce      json
// @Param        date  query  string  false  "Day (YYYY-MM-DD); defaults to today (UTC)"  example(2024-03-01)
// @Success      200  {object}  map[string]interface{}  "intrusions"
// @Router       /api/intrusions [get]
func (h *Handler) intrusions(c *gin.Context) {
	events := h.services.Security.Intrusions(c.Request.Context(), c.Query("date"))
	c.JSON(http.StatusOK, gin.H{"intrusions": events})
}

// @Summary      System status
// @Tags         security
// @Produce      json
// @Success      200  {object}  models.SystemStatus
// @Router       /api/system-status [get]
func (h *Handler) systemStatus(c *gin.Context) {
	status := h.services.Security.Status(c.Request.Context())
	c.JSON(http.StatusOK, status)
}
