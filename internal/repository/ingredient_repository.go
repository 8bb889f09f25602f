package repository

import (
	"gorm.io/gorm"

	"recipe-app-api/internal/database"
	"recipe-app-api/internal/models"
)

// GormIngredientRepository is a GORM implementation of IngredientRepository
type GormIngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new IngredientRepository
func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &GormIngredientRepository{db: db}
}

// List retrieves all ingredients owned by a user, ordered by name descending
func (r *GormIngredientRepository) List(ownerID uint64) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := r.db.Scopes(database.OwnedBy(ownerID)).
		Order("name DESC").
		Find(&ingredients).Error
	if err != nil {
		return nil, err
	}
	return ingredients, nil
}

// Create creates a new ingredient
func (r *GormIngredientRepository) Create(ingredient *models.Ingredient) error {
	return r.db.Create(ingredient).Error
}

// FindOwnedByIDs resolves the given ids to ingredients owned by the user
func (r *GormIngredientRepository) FindOwnedByIDs(ownerID uint64, ids []uint64) ([]models.Ingredient, error) {
	if len(ids) == 0 {
		return []models.Ingredient{}, nil
	}

	var ingredients []models.Ingredient
	err := r.db.Scopes(database.OwnedBy(ownerID)).
		Where("id IN ?", ids).
		Find(&ingredients).Error
	if err != nil {
		return nil, err
	}
	return ingredients, nil
}
