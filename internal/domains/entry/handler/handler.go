package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"journal-backend/internal/domains/entry/model"
	"journal-backend/internal/domains/entry/service"
	userModel "journal-backend/internal/domains/user/model"
	"journal-backend/internal/shared/middleware"
	"journal-backend/internal/shared/response"
)

type EntryHandler struct {
	service service.EntryService
}

func NewEntryHandler(service service.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

// List handles GET /entries
func (h *EntryHandler) List(c *gin.Context) {
	var req model.ListEntriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	viewer := middleware.GetOptionalUserID(c)

	if req.Following && viewer == nil {
		response.Unauthorized(c, "authentication required for the following feed")
		return
	}

	page, err := h.service.List(c.Request.Context(), viewer, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, page)
}

// MostLiked handles GET /users/:id/most-liked
func (h *EntryHandler) MostLiked(c *gin.Context) {
	authorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	count, _ := strconv.Atoi(c.Query("count"))
	viewer := middleware.GetOptionalUserID(c)

	entries, err := h.service.MostLiked(c.Request.Context(), viewer, authorID, count)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, entries)
}

// Get handles GET /entries/:id
func (h *EntryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid entry id")
		return
	}

	viewer := middleware.GetOptionalUserID(c)

	entry, err := h.service.Get(c.Request.Context(), viewer, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, entry)
}

// Create handles POST /entries
func (h *EntryHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	entry, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, entry)
}

// Update handles PATCH /entries/:id
func (h *EntryHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid entry id")
		return
	}

	var req model.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	entry, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, entry)
}

// Delete handles DELETE /entries/:id
func (h *EntryHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid entry id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "entry deleted"})
}

// Like handles POST /entries/:id/like
func (h *EntryHandler) Like(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid entry id")
		return
	}

	entry, err := h.service.Like(c.Request.Context(), userID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, entry)
}

// Unlike handles DELETE /entries/:id/like
func (h *EntryHandler) Unlike(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid entry id")
		return
	}

	entry, err := h.service.Unlike(c.Request.Context(), userID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, entry)
}

func (h *EntryHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrEntryNotFound):
		response.NotFound(c, "Entry not found")
	case errors.Is(err, userModel.ErrUserNotFound):
		response.NotFound(c, "User not found")
	case errors.Is(err, model.ErrPrivateEntry):
		response.Forbidden(c, "This is a private entry")
	case errors.Is(err, model.ErrNotOwner):
		response.Forbidden(c, "You can only modify your own entries")
	case errors.Is(err, model.ErrAlreadyLiked):
		response.BadRequest(c, "Entry already liked")
	case errors.Is(err, model.ErrNotLiked):
		response.BadRequest(c, "Entry not liked")
	case errors.Is(err, model.ErrInvalidSort), errors.Is(err, model.ErrInvalidFilter):
		response.BadRequest(c, err.Error())
	default:
		if response.IsValidationError(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, "Something went wrong")
	}
}
