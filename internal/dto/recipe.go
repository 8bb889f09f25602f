package dto

import (
	"recipe-app-api/internal/models"
)

// TagDTO represents a tag in API responses
type TagDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// IngredientDTO represents an ingredient in API responses
type IngredientDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// RecipeDTO represents a recipe in list and write responses; associations
// appear as raw id lists.
type RecipeDTO struct {
	ID          uint64   `json:"id"`
	Title       string   `json:"title"`
	TimeMinutes int      `json:"time_minutes"`
	Price       string   `json:"price"`
	Link        string   `json:"link"`
	Image       string   `json:"image"`
	Tags        []uint64 `json:"tags"`
	Ingredients []uint64 `json:"ingredients"`
}

// RecipeDetailDTO represents a single recipe with nested associations.
type RecipeDetailDTO struct {
	ID          uint64          `json:"id"`
	Title       string          `json:"title"`
	TimeMinutes int             `json:"time_minutes"`
	Price       string          `json:"price"`
	Link        string          `json:"link"`
	Image       string          `json:"image"`
	Tags        []TagDTO        `json:"tags"`
	Ingredients []IngredientDTO `json:"ingredients"`
}

// ToTagDTO converts a Tag model to TagDTO
func ToTagDTO(tag models.Tag) TagDTO {
	return TagDTO{
		ID:   tag.ID,
		Name: tag.Name,
	}
}

// ToTagDTOs converts a slice of tags to DTOs
func ToTagDTOs(tags []models.Tag) []TagDTO {
	out := make([]TagDTO, len(tags))
	for i, tag := range tags {
		out[i] = ToTagDTO(tag)
	}
	return out
}

// ToIngredientDTO converts an Ingredient model to IngredientDTO
func ToIngredientDTO(ingredient models.Ingredient) IngredientDTO {
	return IngredientDTO{
		ID:   ingredient.ID,
		Name: ingredient.Name,
	}
}

// ToIngredientDTOs converts a slice of ingredients to DTOs
func ToIngredientDTOs(ingredients []models.Ingredient) []IngredientDTO {
	out := make([]IngredientDTO, len(ingredients))
	for i, ingredient := range ingredients {
		out[i] = ToIngredientDTO(ingredient)
	}
	return out
}

// ToRecipeDTO converts a Recipe model to RecipeDTO
func ToRecipeDTO(recipe models.Recipe) RecipeDTO {
	tagIDs := make([]uint64, len(recipe.Tags))
	for i, tag := range recipe.Tags {
		tagIDs[i] = tag.ID
	}

	ingredientIDs := make([]uint64, len(recipe.Ingredients))
	for i, ingredient := range recipe.Ingredients {
		ingredientIDs[i] = ingredient.ID
	}

	return RecipeDTO{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		Image:       recipe.Image,
		Tags:        tagIDs,
		Ingredients: ingredientIDs,
	}
}

// ToRecipeDTOs converts a slice of recipes to DTOs
func ToRecipeDTOs(recipes []models.Recipe) []RecipeDTO {
	out := make([]RecipeDTO, len(recipes))
	for i, recipe := range recipes {
		out[i] = ToRecipeDTO(recipe)
	}
	return out
}

// ToRecipeDetailDTO converts a Recipe model to RecipeDetailDTO
func ToRecipeDetailDTO(recipe models.Recipe) RecipeDetailDTO {
	return RecipeDetailDTO{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		Image:       recipe.Image,
		Tags:        ToTagDTOs(recipe.Tags),
		Ingredients: ToIngredientDTOs(recipe.Ingredients),
	}
}
