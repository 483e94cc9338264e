package storage

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/uuid"
	storage_go "github.com/supabase-community/storage-go"
)

// BucketStore keeps uploads in a Supabase Storage bucket. Useful when the
// inference provider must fetch images over the public internet and the
// server itself is not reachable.
type BucketStore struct {
	client   *storage_go.Client
	bucket   string
	baseURL  string
	maxBytes int64
}

func NewBucketStore(supabaseURL, apiKey, bucket string, maxBytes int64) (*BucketStore, error) {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage_go.NewClient(baseURL+"/storage/v1", apiKey, nil)

	return &BucketStore{
		client:   client,
		bucket:   bucket,
		baseURL:  baseURL,
		maxBytes: maxBytes,
	}, nil
}

func (s *BucketStore) Save(originalFilename, mimeType string, data []byte) (*StoredFile, error) {
	ext, err := checkPayload(mimeType, int64(len(data)), s.maxBytes)
	if err != nil {
		return nil, err
	}

	filename := uuid.New().String() + ext
	objectPath := "uploads/" + filename

	contentType := mimeType
	upsert := false
	_, err = s.client.UploadFile(s.bucket, objectPath, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to bucket: %w", err)
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, objectPath)
	return &StoredFile{
		Path:     "/" + objectPath,
		FullURL:  publicURL,
		Filename: filename,
	}, nil
}
