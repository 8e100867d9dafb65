// Package storage keeps uploaded attachment bytes on an afero filesystem:
// a base-path-confined OS directory in production, memory in tests.
package storage

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"helpdesk/internal/shared/logger"
)

// FileInfo describes a stored upload.
type FileInfo struct {
	Name string
	Size int64
}

type FileStore struct {
	fs        afero.Fs
	dir       string
	urlPrefix string
	logger    logger.Interface
}

// NewLocalFileStore stores files under dir, creating it when missing.
func NewLocalFileStore(dir, urlPrefix string, log logger.Interface) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return NewFileStore(afero.NewBasePathFs(afero.NewOsFs(), dir), dir, urlPrefix, log), nil
}

// NewFileStore wraps an arbitrary afero filesystem whose root is the upload directory.
func NewFileStore(fs afero.Fs, dir, urlPrefix string, log logger.Interface) *FileStore {
	if urlPrefix == "" {
		urlPrefix = "/uploads"
	}
	return &FileStore{
		fs:        fs,
		dir:       dir,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
		logger:    log,
	}
}

// Save writes data under name. Existing files are never overwritten.
func (s *FileStore) Save(ctx context.Context, name string, data []byte) error {
	clean, err := cleanName(name)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	exists, err := afero.Exists(s.fs, clean)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", clean, err)
	}
	if exists {
		return fmt.Errorf("file %s already exists", clean)
	}

	if err := afero.WriteFile(s.fs, clean, data, 0o640); err != nil {
		s.logger.Errorw("failed to write upload", "filename", clean, "error", err)
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Remove deletes the named file. A missing file is reported as os.ErrNotExist.
func (s *FileStore) Remove(ctx context.Context, name string) error {
	clean, err := cleanName(name)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(clean); err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

func (s *FileStore) Exists(name string) bool {
	clean, err := cleanName(name)
	if err != nil {
		return false
	}
	ok, err := afero.Exists(s.fs, clean)
	return err == nil && ok
}

// URL is the public path the file is served under.
func (s *FileStore) URL(name string) string {
	return s.urlPrefix + "/" + name
}

func (s *FileStore) URLPrefix() string {
	return s.urlPrefix
}

// Dir is the configured upload directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// List returns the regular files in the upload directory sorted by name.
func (s *FileStore) List(ctx context.Context) ([]FileInfo, error) {
	entries, err := afero.ReadDir(s.fs, "/")
	if err != nil {
		return nil, fmt.Errorf("failed to read upload directory: %w", err)
	}

	files := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, FileInfo{Name: e.Name(), Size: e.Size()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// HTTPFileSystem exposes the store read-only for static serving.
func (s *FileStore) HTTPFileSystem() http.FileSystem {
	return afero.NewHttpFs(afero.NewReadOnlyFs(s.fs)).Dir("/")
}

// cleanName rejects anything that is not a single path element and roots it at "/".
func cleanName(name string) (string, error) {
	if name == "" || name != path.Base(name) || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid filename: %q", name)
	}
	return "/" + name, nil
}
