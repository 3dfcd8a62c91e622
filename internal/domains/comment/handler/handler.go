package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"journal-backend/internal/domains/comment/model"
	"journal-backend/internal/domains/comment/service"
	entryModel "journal-backend/internal/domains/entry/model"
	"journal-backend/internal/shared/middleware"
	"journal-backend/internal/shared/response"
)

type CommentHandler struct {
	service service.CommentService
}

func NewCommentHandler(service service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// ListByEntry handles GET /entries/:id/comments
func (h *CommentHandler) ListByEntry(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid entry id")
		return
	}

	var req model.ListCommentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	viewer := middleware.GetOptionalUserID(c)

	page, err := h.service.ListByEntry(c.Request.Context(), viewer, entryID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, page)
}

// CountByEntry handles GET /entries/:id/comments/count
func (h *CommentHandler) CountByEntry(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid entry id")
		return
	}

	viewer := middleware.GetOptionalUserID(c)

	count, err := h.service.CountByEntry(c.Request.Context(), viewer, entryID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"count": count})
}

// Create handles POST /entries/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid entry id")
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	comment, err := h.service.Create(c.Request.Context(), userID, entryID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, comment)
}

// Update handles PATCH /comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	var req model.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	comment, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comment)
}

// Delete handles DELETE /comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "comment deleted"})
}

// Like handles POST /comments/:id/like
func (h *CommentHandler) Like(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	comment, err := h.service.Like(c.Request.Context(), userID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comment)
}

// Unlike handles DELETE /comments/:id/like
func (h *CommentHandler) Unlike(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	comment, err := h.service.Unlike(c.Request.Context(), userID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comment)
}

func (h *CommentHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrCommentNotFound):
		response.NotFound(c, "Comment not found")
	case errors.Is(err, entryModel.ErrEntryNotFound):
		response.NotFound(c, "Entry not found")
	case errors.Is(err, entryModel.ErrPrivateEntry):
		response.Forbidden(c, "This is a private entry")
	case errors.Is(err, entryModel.ErrInvalidSort):
		response.BadRequest(c, err.Error())
	case errors.Is(err, model.ErrNotOwner):
		response.Forbidden(c, "You can only modify your own comments")
	case errors.Is(err, model.ErrCommentsDisabled):
		response.Forbidden(c, "Comments are disabled on this entry")
	case errors.Is(err, model.ErrAlreadyLiked):
		response.BadRequest(c, "Comment already liked")
	case errors.Is(err, model.ErrNotLiked):
		response.BadRequest(c, "Comment not liked")
	default:
		if response.IsValidationError(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, "Something went wrong")
	}
}
