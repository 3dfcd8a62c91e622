package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"journal-backend/internal/domains/social/model"
	"journal-backend/internal/domains/social/service"
	"journal-backend/internal/shared/middleware"
	"journal-backend/internal/shared/response"
)

type SocialHandler struct {
	service service.SocialService
}

func NewSocialHandler(service service.SocialService) *SocialHandler {
	return &SocialHandler{service: service}
}

// Follow handles POST /users/:id/follow
func (h *SocialHandler) Follow(c *gin.Context) {
	followerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	followeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	if err := h.service.Follow(c.Request.Context(), followerID, followeeID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "followed"})
}

// Unfollow handles DELETE /users/:id/follow
func (h *SocialHandler) Unfollow(c *gin.Context) {
	followerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	followeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	if err := h.service.Unfollow(c.Request.Context(), followerID, followeeID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "unfollowed"})
}

// Followers handles GET /users/:id/followers
func (h *SocialHandler) Followers(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	page, pageSize := pagingParams(c)

	result, err := h.service.Followers(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Following handles GET /users/:id/following
func (h *SocialHandler) Following(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	page, pageSize := pagingParams(c)

	result, err := h.service.Following(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func pagingParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))
	return page, pageSize
}

func (h *SocialHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrAlreadyFollowing):
		response.BadRequest(c, "You are already following this user")
	case errors.Is(err, model.ErrNotFollowing):
		response.BadRequest(c, "You are not following this user")
	case errors.Is(err, model.ErrCannotFollowSelf):
		response.BadRequest(c, "You cannot follow yourself")
	case errors.Is(err, model.ErrUserNotFound):
		response.NotFound(c, "User not found")
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
