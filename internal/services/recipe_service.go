package services

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gorm.io/gorm"

	"recipe-app-api/internal/models"
	"recipe-app-api/internal/repository"
	"recipe-app-api/internal/storage"
	"recipe-app-api/internal/validators"
)

var (
	ErrRecipeNotFound       = errors.New("recipe not found")
	ErrTitleRequired        = errors.New("title cannot be blank")
	ErrTimeMinutesInvalid   = errors.New("time_minutes must be a positive integer")
	ErrUnknownTagRef        = errors.New("one or more tag ids do not refer to your tags")
	ErrUnknownIngredientRef = errors.New("one or more ingredient ids do not refer to your ingredients")
)

// RecipeService handles recipe business logic, including association
// management and image uploads.
type RecipeService struct {
	recipeRepo     repository.RecipeRepository
	tagRepo        repository.TagRepository
	ingredientRepo repository.IngredientRepository
	images         *storage.ImageStore
}

// NewRecipeService creates a new RecipeService
func NewRecipeService(
	recipeRepo repository.RecipeRepository,
	tagRepo repository.TagRepository,
	ingredientRepo repository.IngredientRepository,
	images *storage.ImageStore,
) *RecipeService {
	return &RecipeService{
		recipeRepo:     recipeRepo,
		tagRepo:        tagRepo,
		ingredientRepo: ingredientRepo,
		images:         images,
	}
}

// CreateRecipeInput represents input for creating a recipe. Tags and
// ingredients are referenced by id and must belong to the owner.
type CreateRecipeInput struct {
	Title         string
	TimeMinutes   int
	Price         string
	Link          string
	TagIDs        []uint64
	IngredientIDs []uint64
}

// UpdateRecipeInput represents input for updating a recipe. On a partial
// update nil fields are left untouched; on a full update the handler fills
// every field and nil collections clear the association sets.
type UpdateRecipeInput struct {
	Title         *string
	TimeMinutes   *int
	Price         *string
	Link          *string
	TagIDs        *[]uint64
	IngredientIDs *[]uint64
}

// List returns the owner's recipes ordered by id descending.
func (s *RecipeService) List(ownerID uint64) ([]models.Recipe, error) {
	recipes, err := s.recipeRepo.List(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// Get returns an owned recipe with tags and ingredients preloaded.
func (s *RecipeService) Get(ownerID, id uint64) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.FindByID(ownerID, id, "Tags", "Ingredients")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to find recipe: %w", err)
	}
	return recipe, nil
}

// Create stores a new recipe stamped with the owner and attaches the
// referenced tags and ingredients.
func (s *RecipeService) Create(ownerID uint64, input CreateRecipeInput) (*models.Recipe, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if input.TimeMinutes <= 0 {
		return nil, ErrTimeMinutesInvalid
	}
	price, err := validators.NormalizePrice(input.Price)
	if err != nil {
		return nil, err
	}

	tags, err := s.resolveTags(ownerID, input.TagIDs)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.resolveIngredients(ownerID, input.IngredientIDs)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		Title:       title,
		TimeMinutes: input.TimeMinutes,
		Price:       price,
		Link:        input.Link,
		UserID:      ownerID,
		Tags:        tags,
		Ingredients: ingredients,
	}
	if err := s.recipeRepo.Create(recipe); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	return recipe, nil
}

// Update applies a full or partial update. Full updates use replace
// semantics: a nil collection clears the existing association set.
func (s *RecipeService) Update(ownerID, id uint64, input UpdateRecipeInput, partial bool) (*models.Recipe, error) {
	recipe, err := s.Get(ownerID, id)
	if err != nil {
		return nil, err
	}

	// Validate every field and resolve every reference before touching the
	// database: a request answered with 400 must leave no partial state.
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		recipe.Title = title
	}
	if input.TimeMinutes != nil {
		if *input.TimeMinutes <= 0 {
			return nil, ErrTimeMinutesInvalid
		}
		recipe.TimeMinutes = *input.TimeMinutes
	}
	if input.Price != nil {
		price, err := validators.NormalizePrice(*input.Price)
		if err != nil {
			return nil, err
		}
		recipe.Price = price
	}
	if input.Link != nil {
		recipe.Link = *input.Link
	}

	var tags *[]models.Tag
	if input.TagIDs != nil || !partial {
		var ids []uint64
		if input.TagIDs != nil {
			ids = *input.TagIDs
		}
		resolved, err := s.resolveTags(ownerID, ids)
		if err != nil {
			return nil, err
		}
		tags = &resolved
	}

	var ingredients *[]models.Ingredient
	if input.IngredientIDs != nil || !partial {
		var ids []uint64
		if input.IngredientIDs != nil {
			ids = *input.IngredientIDs
		}
		resolved, err := s.resolveIngredients(ownerID, ids)
		if err != nil {
			return nil, err
		}
		ingredients = &resolved
	}

	if err := s.recipeRepo.SaveWithAssociations(recipe, tags, ingredients); err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}

	if tags != nil {
		recipe.Tags = *tags
	}
	if ingredients != nil {
		recipe.Ingredients = *ingredients
	}

	return recipe, nil
}

// Delete removes an owned recipe together with its stored image.
func (s *RecipeService) Delete(ownerID, id uint64) error {
	recipe, err := s.Get(ownerID, id)
	if err != nil {
		return err
	}

	if err := s.recipeRepo.Delete(ownerID, id); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	s.images.Remove(recipe.Image)
	return nil
}

// SaveImage validates and stores an uploaded image on the recipe. The
// previous file, if any, is removed after the new path is persisted.
func (s *RecipeService) SaveImage(ownerID, id uint64, r io.Reader, originalName string) (*models.Recipe, error) {
	recipe, err := s.Get(ownerID, id)
	if err != nil {
		return nil, err
	}

	path, err := s.images.SaveRecipeImage(r, originalName)
	if err != nil {
		return nil, err
	}

	oldPath := recipe.Image
	recipe.Image = path
	if err := s.recipeRepo.Update(recipe); err != nil {
		s.images.Remove(path)
		return nil, fmt.Errorf("failed to store image path: %w", err)
	}

	if oldPath != path {
		s.images.Remove(oldPath)
	}

	return recipe, nil
}

// resolveTags maps ids to owned tags, rejecting ids that do not resolve.
// Scoping the lookup to the owner means another user's tag can never be
// attached, even when its id is known.
func (s *RecipeService) resolveTags(ownerID uint64, ids []uint64) ([]models.Tag, error) {
	ids = dedupeIDs(ids)
	tags, err := s.tagRepo.FindOwnedByIDs(ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tags: %w", err)
	}
	if len(tags) != len(ids) {
		return nil, ErrUnknownTagRef
	}
	return tags, nil
}

// resolveIngredients maps ids to owned ingredients, rejecting unknown ids.
func (s *RecipeService) resolveIngredients(ownerID uint64, ids []uint64) ([]models.Ingredient, error) {
	ids = dedupeIDs(ids)
	ingredients, err := s.ingredientRepo.FindOwnedByIDs(ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ingredients: %w", err)
	}
	if len(ingredients) != len(ids) {
		return nil, ErrUnknownIngredientRef
	}
	return ingredients, nil
}

func dedupeIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
