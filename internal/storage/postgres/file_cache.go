package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"content_sync/internal/domain"
)

type FileCacheStore struct {
	db *sqlx.DB
}

func NewFileCacheStore(db *sqlx.DB) *FileCacheStore {
	return &FileCacheStore{db: db}
}

// Upsert records a remote file's last-seen metadata. A fresh row starts
// unprocessed; an existing row keeps its processed flag so a successful
// import is not forgotten when the file is seen again.
func (s *FileCacheStore) Upsert(ctx context.Context, file domain.RemoteFile) error {
	query := `
		INSERT INTO drive_files_cache (file_id, file_name, file_path, modified_time, size, last_checked, is_processed)
		VALUES ($1, $2, $3, $4, $5, NOW(), FALSE)
		ON CONFLICT (file_id) DO UPDATE SET
			file_name = EXCLUDED.file_name,
			file_path = EXCLUDED.file_path,
			modified_time = EXCLUDED.modified_time,
			size = EXCLUDED.size,
			last_checked = EXCLUDED.last_checked`

	_, err := getExecutor(ctx, s.db).ExecContext(ctx, query,
		file.ID, file.Name, file.Path(), file.ModifiedTime, file.Size)
	if err != nil {
		return mapError("upsert file cache", err)
	}
	return nil
}

func (s *FileCacheStore) MarkProcessed(ctx context.Context, fileID string, processed bool) error {
	query := `
		UPDATE drive_files_cache
		SET is_processed = $2, last_checked = NOW()
		WHERE file_id = $1`

	_, err := getExecutor(ctx, s.db).ExecContext(ctx, query, fileID, processed)
	if err != nil {
		return mapError("mark file processed", err)
	}
	return nil
}

func (s *FileCacheStore) Get(ctx context.Context, fileID string) (*domain.FileCacheEntry, error) {
	var entry domain.FileCacheEntry
	query := `
		SELECT id, file_id, file_name, file_path, modified_time, size, last_checked, is_processed
		FROM drive_files_cache
		WHERE file_id = $1`

	if err := sqlx.GetContext(ctx, getExecutor(ctx, s.db), &entry, query, fileID); err != nil {
		return nil, mapError("get file cache entry", err)
	}
	return &entry, nil
}
