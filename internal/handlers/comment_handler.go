package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stride-social/backend/internal/models"
	"github.com/stride-social/backend/internal/service"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	engagement *service.EngagementService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(engagement *service.EngagementService) *CommentHandler {
	return &CommentHandler{engagement: engagement}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:id/comments", h.CommentOnPost)
}

// CommentOnPost appends a comment to a post and returns the updated post
func (h *CommentHandler) CommentOnPost(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	post, err := h.engagement.CommentOnPost(c.Request().Context(), caller, postID, req.Text)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, post)
}
