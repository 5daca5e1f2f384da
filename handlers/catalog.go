// File: workhub/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workhub/services/catalog"
	"workhub/utils"
)

// CatalogHandler serves the room/desk/device catalog endpoints.
type CatalogHandler struct {
	Svc catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

func (h *CatalogHandler) ListRooms(c *gin.Context) {
	rooms, err := h.Svc.ListRooms()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *CatalogHandler) CreateRoom(c *gin.Context) {
	var input catalog.RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidation, err.Error())
		return
	}
	room, err := h.Svc.CreateRoom(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (h *CatalogHandler) UpdateRoom(c *gin.Context) {
	var input catalog.RoomUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidation, err.Error())
		return
	}
	room, err := h.Svc.UpdateRoom(c.Param("id"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *CatalogHandler) ListDesks(c *gin.Context) {
	desks, err := h.Svc.ListDesks()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, desks)
}

func (h *CatalogHandler) CreateDesk(c *gin.Context) {
	var input catalog.DeskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidation, err.Error())
		return
	}
	desk, err := h.Svc.CreateDesk(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, desk)
}

func (h *CatalogHandler) ListDevices(c *gin.Context) {
	devices, err := h.Svc.ListDevices()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, devices)
}

func (h *CatalogHandler) CreateDevice(c *gin.Context) {
	var input catalog.DeviceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidation, err.Error())
		return
	}
	device, err := h.Svc.CreateDevice(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, device)
}
