// File: workhub/handlers/booking.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"workhub/services/booking"
	"workhub/utils"
)

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	Svc booking.Service
}

func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

func (h *BookingHandler) List(c *gin.Context) {
	// Optional filter by user.
	if userID := c.Query("userId"); userID != "" {
		bookings, err := h.Svc.ListByUser(userID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
		return
	}
	bookings, err := h.Svc.ListAll()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) ListActive(c *gin.Context) {
	bookings, err := h.Svc.ListActive()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) ListToday(c *gin.Context) {
	bookings, err := h.Svc.ListForDay(time.Now().UTC())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var input booking.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidation, err.Error())
		return
	}
	b, err := h.Svc.Create(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) Update(c *gin.Context) {
	var input booking.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidation, err.Error())
		return
	}
	b, err := h.Svc.Update(c.Param("id"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CheckIn handles a badge scan. The response shape {success, booking} is
// what the badge reader firmware and the dashboard expect.
func (h *BookingHandler) CheckIn(c *gin.Context) {
	var input struct {
		BadgeID      string `json:"badgeId" binding:"required"`
		ResourceType string `json:"resourceType" binding:"required"`
		ResourceID   string `json:"resourceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidation, err.Error())
		return
	}
	b, err := h.Svc.CheckIn(input.BadgeID, input.ResourceType, input.ResourceID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}
