// File: workhub/handlers/occupancy.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workhub/models"
	"workhub/services/catalog"
	"workhub/services/occupancy"
	"workhub/utils"
)

// OccupancyHandler serves occupancy reads and the telemetry set-count path.
type OccupancyHandler struct {
	Tracker occupancy.Tracker
	Catalog catalog.Service
}

func NewOccupancyHandler(tracker occupancy.Tracker, cat catalog.Service) *OccupancyHandler {
	return &OccupancyHandler{Tracker: tracker, Catalog: cat}
}

// List returns every tracked occupancy record with its derived status band.
func (h *OccupancyHandler) List(c *gin.Context) {
	records, err := h.Tracker.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	out := make([]models.OccupancyView, 0, len(records))
	for _, o := range records {
		out = append(out, models.OccupancyView{
			Occupancy: o,
			Status:    occupancy.StatusFor(o.CurrentCount, h.capacityFor(o.ResourceID)),
		})
	}
	c.JSON(http.StatusOK, out)
}

// SetCount sets an absolute headcount for a room. A non-numeric body is a
// validation failure; a negative count is InvalidCount.
func (h *OccupancyHandler) SetCount(c *gin.Context) {
	var input struct {
		Count *int `json:"count" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidation, "count must be a number")
		return
	}
	o, err := h.Tracker.SetCount(c.Param("roomId"), *input.Count)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OccupancyView{
		Occupancy: *o,
		Status:    occupancy.StatusFor(o.CurrentCount, h.capacityFor(o.ResourceID)),
	})
}

// capacityFor resolves a resource's capacity for banding. Desks count as
// capacity 1; unknown resources as 0.
func (h *OccupancyHandler) capacityFor(resourceID string) int {
	if room, err := h.Catalog.GetRoom(resourceID); err == nil {
		return room.Capacity
	}
	if _, err := h.Catalog.GetDesk(resourceID); err == nil {
		return 1
	}
	return 0
}
