// File: workhub/handlers/users.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"workhub/database/repository"
	"workhub/models"
	"workhub/utils"
)

// UserHandler serves account provisioning. Identity federation lives
// elsewhere; this only records who exists and which badge they carry.
type UserHandler struct {
	Repo repository.UserRepository
}

func NewUserHandler(repo repository.UserRepository) *UserHandler {
	return &UserHandler{Repo: repo}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Repo.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Create(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email"`
		Role    string `json:"role" binding:"required"`
		BadgeID string `json:"badgeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidation, err.Error())
		return
	}
	if !models.ValidRole(input.Role) {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidation, "role must be admin, manager or user")
		return
	}
	user := &models.User{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Role:      input.Role,
		BadgeID:   input.BadgeID,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Repo.Create(user); err != nil {
		if err == repository.ErrDuplicate {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeValidation, "badge id already in use")
			return
		}
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}
