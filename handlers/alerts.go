// File: workhub/handlers/alerts.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workhub/services/alerts"
	"workhub/utils"
)

// AlertHandler serves the alert endpoints.
type AlertHandler struct {
	Engine alerts.Engine
}

func NewAlertHandler(engine alerts.Engine) *AlertHandler {
	return &AlertHandler{Engine: engine}
}

func (h *AlertHandler) List(c *gin.Context) {
	out, err := h.Engine.ListAll()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AlertHandler) ListActive(c *gin.Context) {
	out, err := h.Engine.ListActive()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Create handles manual alert creation. De-duplication applies the same as
// for sweep-raised alerts: if an open alert exists for the same type and
// resource, that alert is returned instead of a duplicate.
func (h *AlertHandler) Create(c *gin.Context) {
	var input alerts.RaiseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidation, err.Error())
		return
	}
	alert, err := h.Engine.Raise(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, alert)
}

func (h *AlertHandler) Resolve(c *gin.Context) {
	alert, err := h.Engine.Resolve(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}
