package handlers

import (
	"net/http"

	"careconnect/middleware"
	feedbackService "careconnect/services/feedback"
	"careconnect/utils"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler exposes the review endpoints.
type FeedbackHandler struct {
	FeedbackService feedbackService.FeedbackService
}

// SubmitFeedbackHandler handles POST /api/feedback.
func (h *FeedbackHandler) SubmitFeedbackHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input feedbackService.FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	fb, err := h.FeedbackService.SubmitFeedback(principal, input)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fb)
}

// UpdateFeedbackHandler handles PUT /api/feedback/:id.
func (h *FeedbackHandler) UpdateFeedbackHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input feedbackService.FeedbackUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	fb, err := h.FeedbackService.UpdateFeedback(principal, c.Param("id"), input)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fb)
}

// DeleteFeedbackHandler handles DELETE /api/feedback/:id.
func (h *FeedbackHandler) DeleteFeedbackHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if err := h.FeedbackService.DeleteFeedback(principal, c.Param("id")); err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback deleted"})
}

// CaretakerFeedbackHandler handles GET /api/feedback/caretaker/:caretakerId.
// Public; shows visible feedback only.
func (h *FeedbackHandler) CaretakerFeedbackHandler(c *gin.Context) {
	page, err := h.FeedbackService.CaretakerFeedback(c.Param("caretakerId"), queryInt64(c, "page", 1), queryInt64(c, "limit", 10))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// MyFeedbacksHandler handles GET /api/feedback/my.
func (h *FeedbackHandler) MyFeedbacksHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	feedbacks, err := h.FeedbackService.MyFeedbacks(principal)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedbacks": feedbacks})
}
