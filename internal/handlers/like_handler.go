package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stride-social/backend/internal/service"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	engagement *service.EngagementService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(engagement *service.EngagementService) *LikeHandler {
	return &LikeHandler{engagement: engagement}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:id/like", h.ToggleLike)
}

// ToggleLike likes the post if the caller has not liked it, unlikes it
// otherwise, and returns the resulting likes set
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	likes, err := h.engagement.ToggleLike(c.Request().Context(), caller, postID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, likes)
}
