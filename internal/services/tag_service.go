package services

import (
	"errors"
	"fmt"
	"strings"

	"recipe-app-api/internal/models"
	"recipe-app-api/internal/repository"
)

var ErrNameRequired = errors.New("name cannot be blank")

// TagService handles tag business logic. Every operation takes the owner
// explicitly; there is no ambient request user below the handler layer.
type TagService struct {
	tagRepo repository.TagRepository
}

// NewTagService creates a new TagService
func NewTagService(tagRepo repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

// List returns the owner's tags ordered by name descending.
func (s *TagService) List(ownerID uint64) ([]models.Tag, error) {
	tags, err := s.tagRepo.List(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// Create stores a new tag stamped with the owner.
func (s *TagService) Create(ownerID uint64, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	tag := &models.Tag{
		Name:   name,
		UserID: ownerID,
	}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return tag, nil
}
