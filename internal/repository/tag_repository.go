package repository

import (
	"gorm.io/gorm"

	"recipe-app-api/internal/database"
	"recipe-app-api/internal/models"
)

// GormTagRepository is a GORM implementation of TagRepository
type GormTagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &GormTagRepository{db: db}
}

// List retrieves all tags owned by a user, ordered by name descending
func (r *GormTagRepository) List(ownerID uint64) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Scopes(database.OwnedBy(ownerID)).
		Order("name DESC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// Create creates a new tag
func (r *GormTagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// FindOwnedByIDs resolves the given ids to tags owned by the user
func (r *GormTagRepository) FindOwnedByIDs(ownerID uint64, ids []uint64) ([]models.Tag, error) {
	if len(ids) == 0 {
		return []models.Tag{}, nil
	}

	var tags []models.Tag
	err := r.db.Scopes(database.OwnedBy(ownerID)).
		Where("id IN ?", ids).
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
