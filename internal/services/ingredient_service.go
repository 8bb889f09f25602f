package services

import (
	"fmt"
	"strings"

	"recipe-app-api/internal/models"
	"recipe-app-api/internal/repository"
)

// IngredientService handles ingredient business logic.
type IngredientService struct {
	ingredientRepo repository.IngredientRepository
}

// NewIngredientService creates a new IngredientService
func NewIngredientService(ingredientRepo repository.IngredientRepository) *IngredientService {
	return &IngredientService{ingredientRepo: ingredientRepo}
}

// List returns the owner's ingredients ordered by name descending.
func (s *IngredientService) List(ownerID uint64) ([]models.Ingredient, error) {
	ingredients, err := s.ingredientRepo.List(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	return ingredients, nil
}

// Create stores a new ingredient stamped with the owner.
func (s *IngredientService) Create(ownerID uint64, name string) (*models.Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	ingredient := &models.Ingredient{
		Name:   name,
		UserID: ownerID,
	}
	if err := s.ingredientRepo.Create(ingredient); err != nil {
		return nil, fmt.Errorf("failed to create ingredient: %w", err)
	}

	return ingredient, nil
}
