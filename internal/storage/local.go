package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes uploads to a fixed directory on disk. Object names are
// deterministic, so a repeat upload for the same email/field overwrites the
// previous file.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

// ObjectName derives the stored filename from the uploader's email and the
// upload field ("resume" or "profile"), with spaces underscored.
func ObjectName(email, field, originalFilename string) string {
	return strings.ReplaceAll(email+"_"+field+"_"+originalFilename, " ", "_")
}

func (s *LocalStore) Upload(_ context.Context, objectName string, _ string, r io.Reader) (string, error) {
	dst := filepath.Join(s.dir, filepath.Base(objectName))

	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	// the path clients fetch back via the static /uploads mount
	return filepath.ToSlash(filepath.Join(filepath.Base(s.dir), filepath.Base(objectName))), nil
}
