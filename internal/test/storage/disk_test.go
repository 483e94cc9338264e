package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juraijvu/furn-newyear/internal/storage"
)

func TestDiskStore_SaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewDiskStore(dir, "http://localhost:8080", 10<<20)
	require.NoError(t, err)

	data := []byte("fake-png-bytes")
	stored, err := store.Save("sofa.png", "image/png", data)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored.Path, "/uploads/"))
	assert.Equal(t, "http://localhost:8080"+stored.Path, stored.FullURL)
	assert.True(t, strings.HasSuffix(stored.Filename, ".png"))

	onDisk, err := os.ReadFile(filepath.Join(dir, stored.Filename))
	require.NoError(t, err)
	assert.Equal(t, data, onDisk)
}

func TestDiskStore_CollisionFreeNames(t *testing.T) {
	store, err := storage.NewDiskStore(t.TempDir(), "http://localhost:8080", 10<<20)
	require.NoError(t, err)

	first, err := store.Save("same.png", "image/png", []byte("a"))
	require.NoError(t, err)
	second, err := store.Save("same.png", "image/png", []byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first.Filename, second.Filename)
}

func TestDiskStore_RejectsUnsupportedMediaType(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewDiskStore(dir, "http://localhost:8080", 10<<20)
	require.NoError(t, err)

	_, err = store.Save("doc.pdf", "application/pdf", []byte("%PDF-1.4"))
	assert.ErrorIs(t, err, storage.ErrUnsupportedMediaType)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "no file should be written on rejection")
}

func TestDiskStore_RejectsOversizedPayload(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewDiskStore(dir, "http://localhost:8080", 16)
	require.NoError(t, err)

	_, err = store.Save("big.png", "image/png", make([]byte, 17))
	assert.ErrorIs(t, err, storage.ErrPayloadTooLarge)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestDiskStore_AcceptsAllAllowedTypes(t *testing.T) {
	store, err := storage.NewDiskStore(t.TempDir(), "http://localhost:8080", 10<<20)
	require.NoError(t, err)

	for mimeType, ext := range map[string]string{
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/gif":  ".gif",
		"image/webp": ".webp",
	} {
		stored, err := store.Save("file", mimeType, []byte("data"))
		require.NoError(t, err, mimeType)
		assert.True(t, strings.HasSuffix(stored.Filename, ext), mimeType)
	}
}
