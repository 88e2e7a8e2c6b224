package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stride-social/backend/internal/service"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	feed *service.FeedService
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(feed *service.FeedService) *FeedHandler {
	return &FeedHandler{feed: feed}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed/following", h.GetFollowingFeed)
	g.GET("/feed/me", h.GetMyActivity)
	g.GET("/feed/user/:username", h.GetUserFeed)
}

// GetFollowingFeed returns the posts of everyone the caller follows,
// newest first
func (h *FeedHandler) GetFollowingFeed(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	posts, err := h.feed.FollowingFeed(c.Request().Context(), caller)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, posts)
}

// GetMyActivity returns the caller's own posts, newest first
func (h *FeedHandler) GetMyActivity(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	posts, err := h.feed.OwnActivity(c.Request().Context(), caller)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, posts)
}

// GetUserFeed returns the posts of the user with the given username,
// newest first
func (h *FeedHandler) GetUserFeed(c echo.Context) error {
	username := c.Param("username")

	posts, err := h.feed.UserFeed(c.Request().Context(), username)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, posts)
}
