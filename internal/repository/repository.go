package repository

import (
	"recipe-app-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by its normalized email address
	FindByEmail(email string) (*models.User, error)

	// Update persists changes to an existing user
	Update(user *models.User) error
}

// TokenRepository defines the interface for auth token data access
type TokenRepository interface {
	// FindByUserID finds the token belonging to a user
	FindByUserID(userID uint64) (*models.AuthToken, error)

	// FindByKey finds a token by its key with the owning user preloaded
	FindByKey(key string) (*models.AuthToken, error)

	// Create stores a new token
	Create(token *models.AuthToken) error
}

// TagRepository defines the interface for tag data access
type TagRepository interface {
	// List retrieves all tags owned by a user, ordered by name descending
	List(ownerID uint64) ([]models.Tag, error)

	// Create creates a new tag
	Create(tag *models.Tag) error

	// FindOwnedByIDs resolves the given ids to tags owned by the user
	FindOwnedByIDs(ownerID uint64, ids []uint64) ([]models.Tag, error)
}

// IngredientRepository defines the interface for ingredient data access
type IngredientRepository interface {
	// List retrieves all ingredients owned by a user, ordered by name descending
	List(ownerID uint64) ([]models.Ingredient, error)

	// Create creates a new ingredient
	Create(ingredient *models.Ingredient) error

	// FindOwnedByIDs resolves the given ids to ingredients owned by the user
	FindOwnedByIDs(ownerID uint64, ids []uint64) ([]models.Ingredient, error)
}

// RecipeRepository defines the interface for recipe data access
type RecipeRepository interface {
	// List retrieves all recipes owned by a user, ordered by id descending
	List(ownerID uint64) ([]models.Recipe, error)

	// FindByID finds an owned recipe, optionally preloading associations
	FindByID(ownerID, id uint64, preload ...string) (*models.Recipe, error)

	// Create creates a new recipe along with its associations
	Create(recipe *models.Recipe) error

	// Update persists scalar fields of an existing recipe
	Update(recipe *models.Recipe) error

	// SaveWithAssociations persists the recipe's scalar fields and, for each
	// non-nil set, replaces the association set, all in one transaction
	SaveWithAssociations(recipe *models.Recipe, tags *[]models.Tag, ingredients *[]models.Ingredient) error

	// Delete removes an owned recipe and its associations
	Delete(ownerID, id uint64) error
}
