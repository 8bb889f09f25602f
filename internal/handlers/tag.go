package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe-app-api/internal/dto"
	apierrors "recipe-app-api/internal/errors"
	"recipe-app-api/internal/middleware"
	"recipe-app-api/internal/services"
)

// TagHandler exposes list and create over the caller's tags.
type TagHandler struct {
	tagService *services.TagService
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(tagService *services.TagService) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// List returns the caller's tags ordered by name descending.
func (h *TagHandler) List(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	tags, err := h.tagService.List(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tags")
		return
	}

	c.JSON(http.StatusOK, dto.ToTagDTOs(tags))
}

// Create stores a new tag owned by the caller.
func (h *TagHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateTagRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	tag, err := h.tagService.Create(userID, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) {
			apierrors.BadRequestWithDetails(c, "Invalid request body", map[string][]string{
				"name": {err.Error()},
			})
			return
		}
		apierrors.InternalError(c, "Failed to create tag")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTagDTO(*tag))
}
