package handlers

import (
	"net/http"
	"strconv"

	"careconnect/middleware"
	"careconnect/models"
	caretakerService "careconnect/services/caretaker"
	"careconnect/utils"

	"github.com/gin-gonic/gin"
)

// CaretakerHandler exposes the public caretaker directory and the admin
// management endpoints.
type CaretakerHandler struct {
	CaretakerService caretakerService.CaretakerService
}

func queryInt64(c *gin.Context, key string, fallback int64) int64 {
	v, err := strconv.ParseInt(c.Query(key), 10, 64)
	if err != nil {
		return fallback
	}
	return v
}

// ListCaretakersHandler handles GET /api/caretakers.
func (h *CaretakerHandler) ListCaretakersHandler(c *gin.Context) {
	minRating, _ := strconv.ParseFloat(c.Query("minRating"), 64)
	q := caretakerService.DirectoryQuery{
		Specialization: c.Query("specialization"),
		Availability:   c.Query("availability"),
		City:           c.Query("city"),
		Search:         c.Query("search"),
		MinRating:      minRating,
		Page:           queryInt64(c, "page", 1),
		Limit:          queryInt64(c, "limit", 10),
	}

	caretakers, total, err := h.CaretakerService.ListCaretakers(q)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"caretakers": caretakers,
		"total":      total,
		"page":       q.Page,
		"limit":      q.Limit,
	})
}

// GetCaretakerHandler handles GET /api/caretakers/:id.
func (h *CaretakerHandler) GetCaretakerHandler(c *gin.Context) {
	caretaker, feedbacks, err := h.CaretakerService.GetCaretaker(c.Param("id"))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"caretaker": caretaker, "recentFeedback": feedbacks})
}

// CreateCaretakerHandler handles POST /api/admin/caretakers.
func (h *CaretakerHandler) CreateCaretakerHandler(c *gin.Context) {
	var input models.Caretaker
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	caretaker, err := h.CaretakerService.CreateCaretaker(&input)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, caretaker)
}

// UpdateCaretakerHandler handles PUT /api/admin/caretakers/:id.
func (h *CaretakerHandler) UpdateCaretakerHandler(c *gin.Context) {
	var input struct {
		Name           string                 `json:"name"`
		Phone          string                 `json:"phone"`
		Specialization string                 `json:"specialization"`
		Experience     *int                   `json:"experience"`
		HourlyRate     *float64               `json:"hourlyRate"`
		Certifications []models.Certification `json:"certifications"`
		Languages      []string               `json:"languages"`
		Address        *models.Address        `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	caretaker, err := h.CaretakerService.UpdateCaretaker(c.Param("id"), func(ct *models.Caretaker) {
		if input.Name != "" {
			ct.Name = input.Name
		}
		if input.Phone != "" {
			ct.Phone = input.Phone
		}
		if input.Specialization != "" {
			ct.Specialization = input.Specialization
		}
		if input.Experience != nil {
			ct.Experience = *input.Experience
		}
		if input.HourlyRate != nil {
			ct.HourlyRate = *input.HourlyRate
		}
		if input.Certifications != nil {
			ct.Certifications = input.Certifications
		}
		if input.Languages != nil {
			ct.Languages = input.Languages
		}
		if input.Address != nil {
			ct.Address = *input.Address
		}
	})
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, caretaker)
}

// SetAvailabilityHandler handles PATCH /api/admin/caretakers/:id/availability.
func (h *CaretakerHandler) SetAvailabilityHandler(c *gin.Context) {
	var input struct {
		Availability string `json:"availability" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	caretaker, err := h.CaretakerService.SetAvailability(c.Param("id"), input.Availability)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, caretaker)
}

// DeactivateCaretakerHandler handles DELETE /api/admin/caretakers/:id.
func (h *CaretakerHandler) DeactivateCaretakerHandler(c *gin.Context) {
	if err := h.CaretakerService.DeactivateCaretaker(c.Param("id")); err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Caretaker deactivated"})
}

// VerifyCaretakerHandler handles PATCH /api/admin/caretakers/:id/verify.
func (h *CaretakerHandler) VerifyCaretakerHandler(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	caretaker, err := h.CaretakerService.VerifyCaretaker(principal.ID, c.Param("id"))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Caretaker verified", "caretaker": caretaker})
}

// UnverifyCaretakerHandler handles PATCH /api/admin/caretakers/:id/unverify.
func (h *CaretakerHandler) UnverifyCaretakerHandler(c *gin.Context) {
	caretaker, err := h.CaretakerService.UnverifyCaretaker(c.Param("id"))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Caretaker verification revoked", "caretaker": caretaker})
}

// AdminListCaretakersHandler handles GET /api/admin/caretakers.
func (h *CaretakerHandler) AdminListCaretakersHandler(c *gin.Context) {
	var isVerified *bool
	if v := c.Query("isVerified"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid isVerified value"})
			return
		}
		isVerified = &b
	}

	page := queryInt64(c, "page", 1)
	limit := queryInt64(c, "limit", 10)
	caretakers, total, err := h.CaretakerService.AdminList(isVerified, c.Query("search"), page, limit)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"caretakers": caretakers,
		"total":      total,
		"page":       page,
		"limit":      limit,
	})
}
