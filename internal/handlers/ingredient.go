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

// IngredientHandler exposes list and create over the caller's ingredients.
type IngredientHandler struct {
	ingredientService *services.IngredientService
}

// NewIngredientHandler creates a new IngredientHandler.
func NewIngredientHandler(ingredientService *services.IngredientService) *IngredientHandler {
	return &IngredientHandler{
		ingredientService: ingredientService,
	}
}

// List returns the caller's ingredients ordered by name descending.
func (h *IngredientHandler) List(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	ingredients, err := h.ingredientService.List(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch ingredients")
		return
	}

	c.JSON(http.StatusOK, dto.ToIngredientDTOs(ingredients))
}

// Create stores a new ingredient owned by the caller.
func (h *IngredientHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateIngredientRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	ingredient, err := h.ingredientService.Create(userID, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) {
			apierrors.BadRequestWithDetails(c, "Invalid request body", map[string][]string{
				"name": {err.Error()},
			})
			return
		}
		apierrors.InternalError(c, "Failed to create ingredient")
		return
	}

	c.JSON(http.StatusCreated, dto.ToIngredientDTO(*ingredient))
}
