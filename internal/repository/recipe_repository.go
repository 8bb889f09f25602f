package repository

import (
	"gorm.io/gorm"

	"recipe-app-api/internal/database"
	"recipe-app-api/internal/models"
)

// GormRecipeRepository is a GORM implementation of RecipeRepository
type GormRecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &GormRecipeRepository{db: db}
}

// List retrieves all recipes owned by a user, ordered by id descending
func (r *GormRecipeRepository) List(ownerID uint64) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.Scopes(database.OwnedBy(ownerID)).
		Preload("Tags").
		Preload("Ingredients").
		Order("id DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// FindByID finds an owned recipe, optionally preloading associations
func (r *GormRecipeRepository) FindByID(ownerID, id uint64, preload ...string) (*models.Recipe, error) {
	query := r.db.Scopes(database.OwnedBy(ownerID))

	for _, p := range preload {
		query = query.Preload(p)
	}

	var recipe models.Recipe
	if err := query.First(&recipe, id).Error; err != nil {
		return nil, err
	}

	return &recipe, nil
}

// Create creates a new recipe along with its associations
func (r *GormRecipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

// Update persists scalar fields of an existing recipe. Associations are
// managed through SaveWithAssociations.
func (r *GormRecipeRepository) Update(recipe *models.Recipe) error {
	return r.db.Omit("Tags", "Ingredients").Save(recipe).Error
}

// SaveWithAssociations persists the recipe's scalar fields and, for each
// non-nil set, replaces the association set. Everything runs in one
// transaction so a failure leaves the recipe untouched.
func (r *GormRecipeRepository) SaveWithAssociations(recipe *models.Recipe, tags *[]models.Tag, ingredients *[]models.Ingredient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if tags != nil {
			assoc := tx.Model(recipe).Association("Tags")
			if len(*tags) == 0 {
				if err := assoc.Clear(); err != nil {
					return err
				}
			} else if err := assoc.Replace(tags); err != nil {
				return err
			}
		}

		if ingredients != nil {
			assoc := tx.Model(recipe).Association("Ingredients")
			if len(*ingredients) == 0 {
				if err := assoc.Clear(); err != nil {
					return err
				}
			} else if err := assoc.Replace(ingredients); err != nil {
				return err
			}
		}

		return tx.Omit("Tags", "Ingredients").Save(recipe).Error
	})
}

// Delete removes an owned recipe and clears its join rows first
func (r *GormRecipeRepository) Delete(ownerID, id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.Scopes(database.OwnedBy(ownerID)).First(&recipe, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&recipe).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&recipe).Association("Ingredients").Clear(); err != nil {
			return err
		}

		return tx.Delete(&recipe).Error
	})
}
