package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	errInvalidDevice = "Invalid device"
	errInvalidBody   = "invalid body"
)

// Request DTO for device commands. Value keeps whatever JSON type the client
// sent; it is serialized to text before hitting the feed.
type controlRequest struct {
	Value any `json:"value"`
}

// ControlRequest is an exported model for Swagger docs of the control payload.
type ControlRequest struct {
	// Value to write to the device feed, e.g. "1" to switch on
	Value string `json:"value" example:"1"`
}

// @Summary      Control a device
// @Description  Forwards one write to the named actuator feed. device must be light, fan or mode.
// @Tags         control
// @Accept       json
// @Produce      json
// @Param        device  path  string          true  "Device name"  Enums(light,fan,mode)
// @Param        body    body  ControlRequest  true  "Command payload"
// @Success      200  {object}  map[string]interface{}  "success, device, value"
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/control/{device} [post]
func (h *Handler) controlDevice(c *gin.Context) {
	device := c.Param("device")

	var req controlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": errInvalidBody})
		return
	}
	value := fmt.Sprint(req.Value)

	success, err := h.services.Control.Set(c.Request.Context(), device, value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": errInvalidDevice})
		return
	}
	if !success && h.log != nil {
		h.log.Errorw("control_write_failed", "device", device, "value", value)
	}
	c.JSON(http.StatusOK, gin.H{
		"success": success,
		"device":  device,
		"value":   req.Value,
	})
}
