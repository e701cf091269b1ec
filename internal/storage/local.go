package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes objects below dir and serves them under publicPrefix.
type LocalStore struct {
	dir          string
	publicPrefix string
}

var _ Store = (*LocalStore)(nil)

func NewLocalStore(dir, publicPrefix string) *LocalStore {
	return &LocalStore{
		dir:          dir,
		publicPrefix: strings.TrimRight(publicPrefix, "/"),
	}
}

func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Put(_ context.Context, key string, body []byte, _ string) (string, error) {
	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", err
	}
	return s.publicPrefix + "/" + key, nil
}
