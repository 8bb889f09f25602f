package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recipe-app-api/internal/dto"
	apierrors "recipe-app-api/internal/errors"
	"recipe-app-api/internal/middleware"
	"recipe-app-api/internal/services"
	"recipe-app-api/internal/storage"
	"recipe-app-api/internal/validators"
)

// RecipeHandler exposes full CRUD plus image upload over the caller's recipes.
type RecipeHandler struct {
	recipeService *services.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipeService *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
	}
}

// List returns the caller's recipes ordered by id descending, with
// associations as id lists.
func (h *RecipeHandler) List(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	recipes, err := h.recipeService.List(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch recipes")
		return
	}

	c.JSON(http.StatusOK, dto.ToRecipeDTOs(recipes))
}

// Get returns a single owned recipe with nested tags and ingredients.
func (h *RecipeHandler) Get(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := recipeID(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.Get(userID, id)
	if err != nil {
		respondRecipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecipeDetailDTO(*recipe))
}

// Create stores a new recipe owned by the caller.
func (h *RecipeHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateRecipeRequest struct {
		// time_minutes skips binding's required tag: it cannot tell a
		// literal 0 from an absent field, and the service rejects both
		// with an out-of-range message.
		Title         string   `json:"title" binding:"required"`
		TimeMinutes   int      `json:"time_minutes"`
		Price         string   `json:"price" binding:"required"`
		Link          string   `json:"link"`
		TagIDs        []uint64 `json:"tags"`
		IngredientIDs []uint64 `json:"ingredients"`
	}

	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	recipe, err := h.recipeService.Create(userID, services.CreateRecipeInput{
		Title:         req.Title,
		TimeMinutes:   req.TimeMinutes,
		Price:         req.Price,
		Link:          req.Link,
		TagIDs:        req.TagIDs,
		IngredientIDs: req.IngredientIDs,
	})
	if err != nil {
		respondRecipeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecipeDTO(*recipe))
}

// Update replaces (PUT) or merges (PATCH) an owned recipe. On PUT, omitted
// tag and ingredient lists clear the existing associations.
func (h *RecipeHandler) Update(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := recipeID(c)
	if !ok {
		return
	}

	partial := c.Request.Method == http.MethodPatch

	type UpdateRecipeRequest struct {
		Title         *string   `json:"title"`
		TimeMinutes   *int      `json:"time_minutes"`
		Price         *string   `json:"price"`
		Link          *string   `json:"link"`
		TagIDs        *[]uint64 `json:"tags"`
		IngredientIDs *[]uint64 `json:"ingredients"`
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	if !partial {
		fields := map[string][]string{}
		if req.Title == nil {
			fields["title"] = []string{"This field is required"}
		}
		if req.TimeMinutes == nil {
			fields["time_minutes"] = []string{"This field is required"}
		}
		if req.Price == nil {
			fields["price"] = []string{"This field is required"}
		}
		if len(fields) > 0 {
			apierrors.BadRequestWithDetails(c, "Invalid request body", fields)
			return
		}
		// Replace semantics for the optional scalar as well.
		if req.Link == nil {
			empty := ""
			req.Link = &empty
		}
	}

	recipe, err := h.recipeService.Update(userID, id, services.UpdateRecipeInput{
		Title:         req.Title,
		TimeMinutes:   req.TimeMinutes,
		Price:         req.Price,
		Link:          req.Link,
		TagIDs:        req.TagIDs,
		IngredientIDs: req.IngredientIDs,
	}, partial)
	if err != nil {
		respondRecipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecipeDTO(*recipe))
}

// Delete removes an owned recipe.
func (h *RecipeHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := recipeID(c)
	if !ok {
		return
	}

	if err := h.recipeService.Delete(userID, id); err != nil {
		respondRecipeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage attaches a multipart image to an owned recipe.
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := recipeID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", map[string][]string{
			"image": {"No image file submitted"},
		})
		return
	}
	defer file.Close()

	recipe, err := h.recipeService.SaveImage(userID, id, file, header.Filename)
	if err != nil {
		respondRecipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    recipe.ID,
		"image": recipe.Image,
	})
}

func recipeID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid recipe id")
		return 0, false
	}
	return id, true
}

func respondRecipeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRecipeNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired):
		apierrors.BadRequestWithDetails(c, "Invalid request body", map[string][]string{
			"title": {err.Error()},
		})
	case errors.Is(err, services.ErrTimeMinutesInvalid):
		apierrors.BadRequestWithDetails(c, "Invalid request body", map[string][]string{
			"time_minutes": {err.Error()},
		})
	case errors.Is(err, validators.ErrPriceInvalid):
		apierrors.BadRequestWithDetails(c, "Invalid request body", map[string][]string{
			"price": {err.Error()},
		})
	case errors.Is(err, services.ErrUnknownTagRef):
		apierrors.BadRequestWithDetails(c, "Invalid request body", map[string][]string{
			"tags": {err.Error()},
		})
	case errors.Is(err, services.ErrUnknownIngredientRef):
		apierrors.BadRequestWithDetails(c, "Invalid request body", map[string][]string{
			"ingredients": {err.Error()},
		})
	case errors.Is(err, storage.ErrNotAnImage):
		apierrors.BadRequestWithDetails(c, "Invalid request body", map[string][]string{
			"image": {err.Error()},
		})
	default:
		apierrors.InternalError(c, "")
	}
}
