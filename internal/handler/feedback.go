package handler

import (
	"errors"
	"net/http"

	"propsearch/internal/model"
	"propsearch/internal/repository"
	"propsearch/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var validActions = map[string]bool{
	"click":        true,
	"contact":      true,
	"view_details": true,
}

// FeedbackHandler handles feedback-related HTTP requests
type FeedbackHandler struct {
	searchService *service.SearchService
	logger        *zap.Logger
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(searchService *service.SearchService, logger *zap.Logger) *FeedbackHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedbackHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// Submit handles POST /api/v1/feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req model.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if !validActions[req.Action] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action. Must be one of: click, contact, view_details"})
		return
	}

	if _, ok := h.searchService.GetProperty(req.Slug); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	err := h.searchService.LogFeedback(c.Request.Context(), req.SearchID, req.Slug, req.Action)
	switch {
	case errors.Is(err, repository.ErrUnknownSearch):
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown search id"})
		return
	case err != nil:
		h.logger.Error("failed to log feedback", zap.String("search_id", req.SearchID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log feedback: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.FeedbackResponse{
		Success: true,
		Message: "Feedback logged successfully",
	})
}
