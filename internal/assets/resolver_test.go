package assets

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content_sync/internal/domain"
)

type fakeLister struct {
	images     map[string][]domain.RemoteFile
	subfolders map[string][]domain.Folder
}

func (f *fakeLister) ListImages(_ context.Context, folderID string) ([]domain.RemoteFile, error) {
	return f.images[folderID], nil
}

func (f *fakeLister) ListSubfolders(_ context.Context, folderID string) ([]domain.Folder, error) {
	return f.subfolders[folderID], nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestBestImage_PicksLargest(t *testing.T) {
	lister := &fakeLister{images: map[string][]domain.RemoteFile{
		"folder": {
			{ID: "a", Name: "small.jpg", Size: 1000},
			{ID: "b", Name: "large.png", Size: 50000},
			{ID: "c", Name: "medium.webp", Size: 20000},
		},
	}}
	r := NewResolver(lister, testLogger())

	best, err := r.BestImage(context.Background(), "folder")
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "large.png", best.Name)
}

func TestBestImage_IgnoresUnacceptableExtensions(t *testing.T) {
	lister := &fakeLister{images: map[string][]domain.RemoteFile{
		"folder": {
			{ID: "a", Name: "huge.tiff", Size: 900000},
			{ID: "b", Name: "photo.jpg", Size: 100},
		},
	}}
	r := NewResolver(lister, testLogger())

	best, err := r.BestImage(context.Background(), "folder")
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "photo.jpg", best.Name)
}

func TestBestImage_NoneFound(t *testing.T) {
	r := NewResolver(&fakeLister{}, testLogger())

	best, err := r.BestImage(context.Background(), "empty")
	require.NoError(t, err)
	assert.Nil(t, best)
}

func TestTierSeparation_ShallowMissesNestedImage(t *testing.T) {
	// Image lives only in a nested subfolder: the shallow tier must return
	// nothing while the deep tier finds it.
	lister := &fakeLister{
		images: map[string][]domain.RemoteFile{
			"nested": {{ID: "x", Name: "cover.jpg", Size: 4096}},
		},
		subfolders: map[string][]domain.Folder{
			"article": {{ID: "nested", Name: "extras"}},
		},
	}
	r := NewResolver(lister, testLogger())

	shallow, err := r.BestImage(context.Background(), "article")
	require.NoError(t, err)
	assert.Nil(t, shallow)

	deep, err := r.BestImageDeep(context.Background(), "article")
	require.NoError(t, err)
	require.NotNil(t, deep)
	assert.Equal(t, "cover.jpg", deep.Name)
}

func TestBestImageDeep_PrefersLargestAcrossTiers(t *testing.T) {
	lister := &fakeLister{
		images: map[string][]domain.RemoteFile{
			"article": {{ID: "a", Name: "direct.jpg", Size: 100}},
			"nested":  {{ID: "b", Name: "big.jpg", Size: 100000}},
		},
		subfolders: map[string][]domain.Folder{
			"article": {{ID: "nested", Name: "extras"}},
		},
	}
	r := NewResolver(lister, testLogger())

	deep, err := r.BestImageDeep(context.Background(), "article")
	require.NoError(t, err)
	require.NotNil(t, deep)
	assert.Equal(t, "big.jpg", deep.Name)
}

func TestImageCache_StoreCreatesDirs(t *testing.T) {
	cache := NewImageCache(t.TempDir(), testLogger())

	dest, err := cache.Store("JULY 2025/Some Article", "photo_Pexels.jpg", []byte("img"))
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), data)
	assert.Equal(t, filepath.Join(cache.baseDir, "JULY 2025", "Some Article", "photo_Pexels.jpg"), dest)
}

func TestImageCache_EvictsStaleImages(t *testing.T) {
	base := t.TempDir()
	cache := NewImageCache(base, testLogger())

	_, err := cache.Store("JULY 2025/Some Article", "old.jpg", []byte("old"))
	require.NoError(t, err)
	// A non-image file in the same directory must survive eviction.
	notes := filepath.Join(base, "JULY 2025", "Some Article", "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("keep"), 0o644))

	_, err = cache.Store("JULY 2025/Some Article", "new.png", []byte("new"))
	require.NoError(t, err)

	var names []string
	err = filepath.WalkDir(filepath.Join(base, "JULY 2025"), func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			names = append(names, d.Name())
		}
		return nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"new.png", "notes.txt"}, names)
}

func TestImageCache_RestoringSameNameKeepsFile(t *testing.T) {
	cache := NewImageCache(t.TempDir(), testLogger())

	_, err := cache.Store("M/A", "same.jpg", []byte("v1"))
	require.NoError(t, err)
	dest, err := cache.Store("M/A", "same.jpg", []byte("v2"))
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)
}
