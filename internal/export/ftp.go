package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"
)

type FTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	BaseDir  string
	Timeout  time.Duration
}

// FTPUploader ships files to the delivery server. Each Upload opens its own
// connection so uploads can run concurrently.
type FTPUploader struct {
	cfg    FTPConfig
	logger *slog.Logger
}

func NewFTPUploader(cfg FTPConfig, logger *slog.Logger) *FTPUploader {
	return &FTPUploader{cfg: cfg, logger: logger}
}

func (u *FTPUploader) Upload(ctx context.Context, remotePath string, data []byte) error {
	addr := fmt.Sprintf("%s:%d", u.cfg.Host, u.cfg.Port)

	conn, err := ftp.Dial(addr,
		ftp.DialWithContext(ctx),
		ftp.DialWithTimeout(u.cfg.Timeout),
	)
	if err != nil {
		return fmt.Errorf("dial ftp %s: %w", addr, err)
	}
	defer conn.Quit()

	if err := conn.Login(u.cfg.User, u.cfg.Password); err != nil {
		return fmt.Errorf("ftp login: %w", err)
	}

	full := path.Join(u.cfg.BaseDir, remotePath)
	if err := u.ensureDir(conn, path.Dir(full)); err != nil {
		return err
	}

	if err := conn.Stor(full, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("store %s: %w", full, err)
	}

	u.logger.Debug("uploaded file", "path", full, "bytes", len(data))
	return nil
}

// ensureDir creates the remote directory tree segment by segment. MakeDir
// errors are ignored because the segment usually exists already.
func (u *FTPUploader) ensureDir(conn *ftp.ServerConn, dir string) error {
	if dir == "" || dir == "." || dir == "/" {
		return nil
	}
	var current string
	for _, segment := range strings.Split(strings.Trim(dir, "/"), "/") {
		current = path.Join(current, segment)
		_ = conn.MakeDir(current)
	}
	return nil
}
