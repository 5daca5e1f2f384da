package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workhub/services/telemetry"
	"workhub/utils"
)

// TelemetryHandler ingests device reports.
type TelemetryHandler struct {
	Ingestor *telemetry.Ingestor
}

func NewTelemetryHandler(ing *telemetry.Ingestor) *TelemetryHandler {
	return &TelemetryHandler{Ingestor: ing}
}

func (h *TelemetryHandler) Ingest(c *gin.Context) {
	var input telemetry.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidation, err.Error())
		return
	}
	device, err := h.Ingestor.Ingest(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "device": device})
}
