// Package storage persists uploaded media under a configured root directory.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"recipe-app-api/internal/constants"
)

var ErrNotAnImage = errors.New("uploaded file is not a valid image")

// ImageStore writes recipe images below a media root and hands back
// root-relative paths suitable for persisting on the recipe record.
type ImageStore struct {
	root string
}

func NewImageStore(root string) *ImageStore {
	return &ImageStore{root: root}
}

// SaveRecipeImage validates that the payload decodes as an image and stores it
// under uploads/recipe/<uuid><ext>. Each upload gets a fresh name so a new
// image never overwrites an earlier one.
func (s *ImageStore) SaveRecipeImage(r io.Reader, originalName string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	if _, err := imaging.Decode(bytes.NewReader(data)); err != nil {
		return "", ErrNotAnImage
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".jpg"
	}

	relPath := filepath.Join(constants.RecipeImageDir, uuid.New().String()+ext)
	destPath := filepath.Join(s.root, relPath)

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	if err := os.WriteFile(destPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	return relPath, nil
}

// Remove deletes a previously stored image. Failures are logged, not
// propagated; a stale file never blocks a request.
func (s *ImageStore) Remove(relPath string) {
	if relPath == "" {
		return
	}

	if err := os.Remove(filepath.Join(s.root, relPath)); err != nil && !os.IsNotExist(err) {
		zap.L().Warn("failed to remove replaced image", zap.String("path", relPath), zap.Error(err))
	}
}
