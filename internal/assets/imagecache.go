package assets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ImageCache persists chosen article images on local disk under
// baseDir/<drive path segments>/<filename>.
type ImageCache struct {
	baseDir string
	logger  *slog.Logger
}

func NewImageCache(baseDir string, logger *slog.Logger) *ImageCache {
	return &ImageCache{
		baseDir: baseDir,
		logger:  logger.With("component", "image_cache"),
	}
}

// Store writes an image for the given drive path, creating parent
// directories as needed. Previously cached images under the same path that
// differ by name are deleted first, so a resync that changes the chosen
// asset never leaves a stale image behind.
func (c *ImageCache) Store(drivePath, name string, data []byte) (string, error) {
	segments := splitPath(drivePath)
	dir := filepath.Join(append([]string{c.baseDir}, segments...)...)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create image dir: %w", err)
	}

	c.evictStale(dir, name)

	dest := filepath.Join(dir, name)
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return dest, nil
}

func (c *ImageCache) evictStale(dir, keep string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == keep || !Acceptable(entry.Name()) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			c.logger.Warn("failed to remove stale image", "file", entry.Name(), "error", err)
			continue
		}
		c.logger.Debug("removed stale image", "file", entry.Name())
	}
}

func splitPath(drivePath string) []string {
	var segments []string
	for _, s := range strings.Split(drivePath, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
