// Package assets selects and caches the image asset attached to an article.
package assets

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"content_sync/internal/domain"
)

// FolderLister is the slice of the drive client the resolver needs.
type FolderLister interface {
	ListImages(ctx context.Context, folderID string) ([]domain.RemoteFile, error)
	ListSubfolders(ctx context.Context, folderID string) ([]domain.Folder, error)
}

var acceptedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// Acceptable reports whether a filename looks like a servable image.
func Acceptable(name string) bool {
	return acceptedExtensions[strings.ToLower(filepath.Ext(name))]
}

type Resolver struct {
	drive  FolderLister
	logger *slog.Logger
}

func NewResolver(drive FolderLister, logger *slog.Logger) *Resolver {
	return &Resolver{
		drive:  drive,
		logger: logger.With("component", "assets"),
	}
}

// BestImage returns the largest acceptable image among the folder's direct
// children, or nil when there is none. It deliberately ignores subfolders:
// the FTP export relies on this tier skipping nested "extras".
func (r *Resolver) BestImage(ctx context.Context, folderID string) (*domain.RemoteFile, error) {
	images, err := r.drive.ListImages(ctx, folderID)
	if err != nil {
		return nil, err
	}
	return pickLargest(images), nil
}

// BestImageDeep performs the same search recursively through subfolders.
// Callers use it as a fallback tier when BestImage finds nothing, or when
// they explicitly opt into deep search.
func (r *Resolver) BestImageDeep(ctx context.Context, folderID string) (*domain.RemoteFile, error) {
	best, err := r.BestImage(ctx, folderID)
	if err != nil {
		return nil, err
	}

	subfolders, err := r.drive.ListSubfolders(ctx, folderID)
	if err != nil {
		return nil, err
	}
	for _, sub := range subfolders {
		candidate, err := r.BestImageDeep(ctx, sub.ID)
		if err != nil {
			return nil, err
		}
		if candidate != nil && (best == nil || candidate.Size > best.Size) {
			best = candidate
		}
	}
	return best, nil
}

func pickLargest(images []domain.RemoteFile) *domain.RemoteFile {
	var best *domain.RemoteFile
	for i := range images {
		img := &images[i]
		if !Acceptable(img.Name) {
			continue
		}
		if best == nil || img.Size > best.Size {
			best = img
		}
	}
	return best
}
