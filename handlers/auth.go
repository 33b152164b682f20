package handlers

import (
	"net/http"

	"careconnect/middleware"
	"careconnect/models"
	userService "careconnect/services/user"
	"careconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes signup, login and profile endpoints.
type AuthHandler struct {
	UserService userService.UserService
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var input userService.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	resp, err := h.UserService.Register(input)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input userService.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	resp, err := h.UserService.Login(input)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProfileHandler handles GET /api/auth/me.
func (h *AuthHandler) ProfileHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	u, err := h.UserService.GetUserByID(principal.ID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateProfileHandler handles PUT /api/auth/me. Only name, phone and address
// may change; email and role are fixed.
func (h *AuthHandler) UpdateProfileHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input struct {
		Name    string          `json:"name"`
		Phone   string          `json:"phone"`
		Address *models.Address `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	u, err := h.UserService.UpdateUser(principal.ID, func(u *models.User) {
		if input.Name != "" {
			u.Name = input.Name
		}
		if input.Phone != "" {
			u.Phone = input.Phone
		}
		if input.Address != nil {
			u.Address = *input.Address
		}
	})
	if err != nil {
		utils.GetLogger().Error("Profile update failed", zap.String("userID", principal.ID), zap.Error(err))
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
