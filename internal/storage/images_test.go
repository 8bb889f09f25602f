package storage

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImageStore_SaveRecipeImage(t *testing.T) {
	root := t.TempDir()
	store := NewImageStore(root)

	relPath, err := store.SaveRecipeImage(bytes.NewReader(pngBytes(t)), "photo.PNG")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(relPath, filepath.Join("uploads", "recipe")))
	require.True(t, strings.HasSuffix(relPath, ".png"))

	_, err = os.Stat(filepath.Join(root, relPath))
	require.NoError(t, err)
}

func TestImageStore_SaveRecipeImage_UniqueNames(t *testing.T) {
	store := NewImageStore(t.TempDir())

	first, err := store.SaveRecipeImage(bytes.NewReader(pngBytes(t)), "photo.png")
	require.NoError(t, err)
	second, err := store.SaveRecipeImage(bytes.NewReader(pngBytes(t)), "photo.png")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

func TestImageStore_SaveRecipeImage_NotAnImage(t *testing.T) {
	store := NewImageStore(t.TempDir())

	_, err := store.SaveRecipeImage(strings.NewReader("notimage"), "photo.png")
	require.ErrorIs(t, err, ErrNotAnImage)
}

func TestImageStore_Remove(t *testing.T) {
	root := t.TempDir()
	store := NewImageStore(root)

	relPath, err := store.SaveRecipeImage(bytes.NewReader(pngBytes(t)), "photo.png")
	require.NoError(t, err)

	store.Remove(relPath)
	_, err = os.Stat(filepath.Join(root, relPath))
	require.True(t, os.IsNotExist(err))

	// Removing a missing or empty path is a no-op.
	store.Remove(relPath)
	store.Remove("")
}
