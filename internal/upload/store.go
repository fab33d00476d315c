// BYH Music Store | 2026
// store.go

package upload

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/byhstore/byh-store/internal/config"
)

// Store writes uploaded images under a public static directory and hands
// back the absolute URL they will be served from.
type Store struct {
	dir        string
	publicPath string
	maxBytes   int64
}

func NewStore(cfg config.UploadConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &Store{
		dir:        cfg.Dir,
		publicPath: cfg.PublicPath,
		maxBytes:   cfg.MaxBytes,
	}, nil
}

// SaveFromRequest stores the file uploaded under field, if any. It returns
// the absolute public URL of the stored file, or "" when the request
// carries no file for that field.
func (s *Store) SaveFromRequest(
	r *http.Request,
	field string,
) (string, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read upload %q: %w", field, err)
	}
	defer file.Close() //nolint:errcheck // read-only handle

	if s.maxBytes > 0 && header.Size > s.maxBytes {
		return "", fmt.Errorf(
			"upload %q: file exceeds %d bytes",
			field,
			s.maxBytes,
		)
	}

	name := uniqueName(field, header)

	if err := s.write(name, file); err != nil {
		return "", err
	}

	return s.PublicURL(r, name), nil
}

func (s *Store) write(name string, src multipart.File) error {
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close() //nolint:errcheck // cleanup on copy failure
		return fmt.Errorf("write upload file: %w", err)
	}

	if err := dst.Close(); err != nil {
		return fmt.Errorf("close upload file: %w", err)
	}

	return nil
}

// PublicURL composes the absolute URL of a stored file from the incoming
// request's scheme and host.
func (s *Store) PublicURL(r *http.Request, name string) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}

	return fmt.Sprintf(
		"%s://%s%s",
		scheme,
		r.Host,
		path.Join(s.publicPath, name),
	)
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) PublicPath() string {
	return s.publicPath
}

// uniqueName mirrors the classic "field-timestamp-random.ext" disk naming
// so repeated uploads never overwrite each other.
func uniqueName(field string, header *multipart.FileHeader) string {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = ".bin"
	}

	//nolint:gosec // G404: uniqueness suffix, not a secret
	suffix := rand.Int64N(1_000_000_000)

	return fmt.Sprintf(
		"%s-%d-%d%s",
		field,
		time.Now().UnixMilli(),
		suffix,
		ext,
	)
}
