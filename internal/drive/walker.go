// Package drive reads the month/article folder hierarchy from Google Drive.
package drive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	drivev3 "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"content_sync/internal/domain"
)

const (
	folderMimeType = "application/vnd.google-apps.folder"
	docxMimeType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	pageSize = 1000
)

// NewService builds the Drive API client from injected credentials. The
// token source refreshes access tokens transparently; a failed refresh
// surfaces as domain.ErrAuthExpired from the calling walker method.
func NewService(ctx context.Context, clientID, clientSecret, refreshToken string) (*drivev3.Service, error) {
	cfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://accounts.google.com/o/oauth2/auth",
			TokenURL: "https://oauth2.googleapis.com/token",
		},
		Scopes: []string{drivev3.DriveReadonlyScope},
	}
	ts := cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})

	svc, err := drivev3.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return svc, nil
}

// Walker navigates one root folder's month/article hierarchy. The name->id
// caches are scoped to the Walker instance; create a fresh Walker per
// synchronization run so lookups never leak across runs.
type Walker struct {
	svc    *drivev3.Service
	rootID string
	logger *slog.Logger

	monthIDs   map[string]string // month name -> folder id
	articleIDs map[string]string // month id + "/" + article name -> folder id
}

func NewWalker(svc *drivev3.Service, rootFolderID string, logger *slog.Logger) *Walker {
	return &Walker{
		svc:        svc,
		rootID:     rootFolderID,
		logger:     logger.With("component", "drive"),
		monthIDs:   make(map[string]string),
		articleIDs: make(map[string]string),
	}
}

// ListMonthFolders lists the top-level month folders alphabetically.
func (w *Walker) ListMonthFolders(ctx context.Context) ([]domain.Folder, error) {
	q := fmt.Sprintf("'%s' in parents and mimeType='%s' and trashed=false", w.rootID, folderMimeType)
	files, err := w.listAll(ctx, q, "name")
	if err != nil {
		return nil, fmt.Errorf("list month folders: %w", err)
	}
	return toFolders(files), nil
}

// ListRecentMonthFolders lists at most limit month folders, newest first by
// creation time.
func (w *Walker) ListRecentMonthFolders(ctx context.Context, limit int) ([]domain.Folder, error) {
	q := fmt.Sprintf("'%s' in parents and mimeType='%s' and trashed=false", w.rootID, folderMimeType)
	files, err := w.listAll(ctx, q, "createdTime desc")
	if err != nil {
		return nil, fmt.Errorf("list recent month folders: %w", err)
	}
	if len(files) > limit {
		files = files[:limit]
	}
	return toFolders(files), nil
}

// ListArticleFolders lists the article folders beneath a month folder, each
// annotated with the number of files it contains.
func (w *Walker) ListArticleFolders(ctx context.Context, monthID string) ([]domain.Folder, error) {
	q := fmt.Sprintf("'%s' in parents and mimeType='%s' and trashed=false", monthID, folderMimeType)
	files, err := w.listAll(ctx, q, "name")
	if err != nil {
		return nil, fmt.Errorf("list article folders: %w", err)
	}

	folders := toFolders(files)
	for i := range folders {
		count, err := w.countFiles(ctx, folders[i].ID)
		if err != nil {
			w.logger.Warn("count files failed", "folder", folders[i].Name, "error", err)
			continue
		}
		folders[i].FileCount = count
	}
	return folders, nil
}

// ListSubfolders lists child folders without counting their contents.
func (w *Walker) ListSubfolders(ctx context.Context, folderID string) ([]domain.Folder, error) {
	q := fmt.Sprintf("'%s' in parents and mimeType='%s' and trashed=false", folderID, folderMimeType)
	files, err := w.listAll(ctx, q, "name")
	if err != nil {
		return nil, fmt.Errorf("list subfolders: %w", err)
	}
	return toFolders(files), nil
}

// ListDocuments lists DOCX files in a folder, sorted by name. Word's "~$"
// lock files are excluded.
func (w *Walker) ListDocuments(ctx context.Context, folderID string) ([]domain.RemoteFile, error) {
	q := fmt.Sprintf("'%s' in parents and (mimeType='%s' or name contains '.docx') and trashed=false",
		folderID, docxMimeType)
	files, err := w.listAll(ctx, q, "name")
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	out := make([]domain.RemoteFile, 0, len(files))
	for _, f := range files {
		if len(f.Name) >= 2 && f.Name[:2] == "~$" {
			continue
		}
		out = append(out, toRemoteFile(f))
	}
	return out, nil
}

// ListImages lists image files in a folder, sorted by name.
func (w *Walker) ListImages(ctx context.Context, folderID string) ([]domain.RemoteFile, error) {
	q := fmt.Sprintf("'%s' in parents and mimeType contains 'image/' and trashed=false", folderID)
	files, err := w.listAll(ctx, q, "name")
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	out := make([]domain.RemoteFile, 0, len(files))
	for _, f := range files {
		out = append(out, toRemoteFile(f))
	}
	return out, nil
}

// DocumentsInMonth enumerates every document file beneath a month folder,
// annotated with its hierarchical path. Article folders are visited in name
// order, so callers see a stable per-month ordering.
func (w *Walker) DocumentsInMonth(ctx context.Context, month domain.Folder) ([]domain.RemoteFile, error) {
	articleFolders, err := w.ListSubfolders(ctx, month.ID)
	if err != nil {
		return nil, err
	}

	var out []domain.RemoteFile
	for _, af := range articleFolders {
		docs, err := w.ListDocuments(ctx, af.ID)
		if err != nil {
			return nil, err
		}
		for _, d := range docs {
			d.MonthName = month.Name
			d.ArticleName = af.Name
			d.ArticleFolderID = af.ID
			out = append(out, d)
		}
	}
	return out, nil
}

// FindMonthID resolves a month folder name to its id. An unknown name
// returns ("", nil): absence is a normal condition here, the caller decides
// whether it is an error.
func (w *Walker) FindMonthID(ctx context.Context, name string) (string, error) {
	if id, ok := w.monthIDs[name]; ok {
		return id, nil
	}
	months, err := w.ListMonthFolders(ctx)
	if err != nil {
		return "", err
	}
	for _, m := range months {
		w.monthIDs[m.Name] = m.ID
	}
	return w.monthIDs[name], nil
}

// FindArticleID resolves an article folder name within a month to its id,
// with the same "absence is normal" contract as FindMonthID.
func (w *Walker) FindArticleID(ctx context.Context, monthID, name string) (string, error) {
	key := monthID + "/" + name
	if id, ok := w.articleIDs[key]; ok {
		return id, nil
	}
	folders, err := w.ListSubfolders(ctx, monthID)
	if err != nil {
		return "", err
	}
	for _, f := range folders {
		w.articleIDs[monthID+"/"+f.Name] = f.ID
	}
	return w.articleIDs[key], nil
}

// Download fetches a file's binary content.
func (w *Walker) Download(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := w.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, wrapDriveErr(fmt.Errorf("download file %s: %w", fileID, err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", fileID, err)
	}
	return data, nil
}

func (w *Walker) listAll(ctx context.Context, query, orderBy string) ([]*drivev3.File, error) {
	var out []*drivev3.File
	pageToken := ""
	for {
		call := w.svc.Files.List().
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType, size, createdTime, modifiedTime)").
			OrderBy(orderBy).
			PageSize(pageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		res, err := call.Do()
		if err != nil {
			return nil, wrapDriveErr(err)
		}
		out = append(out, res.Files...)

		if res.NextPageToken == "" {
			return out, nil
		}
		pageToken = res.NextPageToken
	}
}

func (w *Walker) countFiles(ctx context.Context, folderID string) (int, error) {
	q := fmt.Sprintf("'%s' in parents and trashed=false", folderID)
	files, err := w.listAll(ctx, q, "name")
	if err != nil {
		return 0, err
	}
	return len(files), nil
}

// wrapDriveErr distinguishes credential failures from everything else so
// the orchestrator can abort with a re-authentication signal instead of
// silently skipping content.
func wrapDriveErr(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusUnauthorized {
			return fmt.Errorf("%w: %v", domain.ErrAuthExpired, err)
		}
		if apiErr.Code == http.StatusNotFound {
			return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
		}
		return err
	}
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return fmt.Errorf("%w: %v", domain.ErrAuthExpired, err)
	}
	return err
}

func toFolders(files []*drivev3.File) []domain.Folder {
	out := make([]domain.Folder, 0, len(files))
	for _, f := range files {
		out = append(out, domain.Folder{
			ID:           f.Id,
			Name:         f.Name,
			CreatedTime:  parseDriveTime(f.CreatedTime),
			ModifiedTime: parseDriveTime(f.ModifiedTime),
		})
	}
	return out
}

func toRemoteFile(f *drivev3.File) domain.RemoteFile {
	return domain.RemoteFile{
		ID:           f.Id,
		Name:         f.Name,
		MimeType:     f.MimeType,
		Size:         f.Size,
		ModifiedTime: parseDriveTime(f.ModifiedTime),
	}
}

func parseDriveTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
