package repository

import (
	"gorm.io/gorm"

	"recipe-app-api/internal/models"
)

// GormTokenRepository is a GORM implementation of TokenRepository
type GormTokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &GormTokenRepository{db: db}
}

// FindByUserID finds the token belonging to a user
func (r *GormTokenRepository) FindByUserID(userID uint64) (*models.AuthToken, error) {
	var token models.AuthToken
	if err := r.db.Where("user_id = ?", userID).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// FindByKey finds a token by its key with the owning user preloaded
func (r *GormTokenRepository) FindByKey(key string) (*models.AuthToken, error) {
	var token models.AuthToken
	if err := r.db.Preload("User").Where("key = ?", key).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// Create stores a new token
func (r *GormTokenRepository) Create(token *models.AuthToken) error {
	return r.db.Create(token).Error
}
