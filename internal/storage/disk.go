package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStore writes uploads to a local directory served under /uploads.
type DiskStore struct {
	dir      string
	baseURL  string
	maxBytes int64
}

func NewDiskStore(dir, baseURL string, maxBytes int64) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &DiskStore{
		dir:      dir,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		maxBytes: maxBytes,
	}, nil
}

func (s *DiskStore) Save(originalFilename, mimeType string, data []byte) (*StoredFile, error) {
	ext, err := checkPayload(mimeType, int64(len(data)), s.maxBytes)
	if err != nil {
		return nil, err
	}

	filename := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write upload: %w", err)
	}

	path := "/uploads/" + filename
	return &StoredFile{
		Path:     path,
		FullURL:  s.baseURL + path,
		Filename: filename,
	}, nil
}

// Dir exposes the upload directory for static file serving.
func (s *DiskStore) Dir() string {
	return s.dir
}
