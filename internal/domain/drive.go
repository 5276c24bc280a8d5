package domain

import "time"

// Folder is a remote directory: either a month folder ("JULY 2025") or an
// article folder beneath one.
type Folder struct {
	ID           string
	Name         string
	CreatedTime  time.Time
	ModifiedTime time.Time
	FileCount    int
}

// RemoteFile describes one file discovered in the drive hierarchy. It is
// ephemeral; only the drive_files_cache row derived from it is persisted.
type RemoteFile struct {
	ID              string
	Name            string
	MimeType        string
	Size            int64
	ModifiedTime    time.Time
	MonthName       string
	ArticleName     string
	ArticleFolderID string
}

// Path returns the hierarchical path without the filename, e.g.
// "JULY 2025/Some Article".
func (f RemoteFile) Path() string {
	if f.MonthName == "" {
		return f.ArticleName
	}
	return f.MonthName + "/" + f.ArticleName
}

// FullPath returns the path including the filename.
func (f RemoteFile) FullPath() string {
	return f.Path() + "/" + f.Name
}

// FileCacheEntry is the durable record of a remote file's last-seen metadata.
// Processed flips to true only after a successful import and is reset to
// false when processing the file fails, so the next run retries it.
type FileCacheEntry struct {
	ID           int64     `db:"id"`
	FileID       string    `db:"file_id"`
	FileName     string    `db:"file_name"`
	FilePath     string    `db:"file_path"`
	ModifiedTime time.Time `db:"modified_time"`
	Size         int64     `db:"size"`
	LastChecked  time.Time `db:"last_checked"`
	Processed    bool      `db:"is_processed"`
}
