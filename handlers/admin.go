package handlers

import (
	"net/http"

	adminService "careconnect/services/admin"
	userService "careconnect/services/user"
	"careconnect/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes dashboard stats and user management endpoints.
type AdminHandler struct {
	AdminService adminService.AdminService
	UserService  userService.UserService
}

// DashboardStatsHandler handles GET /api/admin/stats.
func (h *AdminHandler) DashboardStatsHandler(c *gin.Context) {
	stats, err := h.AdminService.GetDashboardStats()
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	page := queryInt64(c, "page", 1)
	limit := queryInt64(c, "limit", 10)
	users, total, err := h.UserService.GetAllUsers(c.Query("search"), page, limit)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetUserHandler handles GET /api/admin/users/:id.
func (h *AdminHandler) GetUserHandler(c *gin.Context) {
	u, err := h.UserService.GetUserByID(c.Param("id"))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// DeactivateUserHandler handles PATCH /api/admin/users/:id/deactivate.
func (h *AdminHandler) DeactivateUserHandler(c *gin.Context) {
	u, err := h.UserService.DeactivateUser(c.Param("id"))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deactivated", "user": u})
}

// ActivateUserHandler handles PATCH /api/admin/users/:id/activate.
func (h *AdminHandler) ActivateUserHandler(c *gin.Context) {
	u, err := h.UserService.ActivateUser(c.Param("id"))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User activated", "user": u})
}
