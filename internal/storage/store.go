package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedMediaType rejects anything outside the image allowlist.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrPayloadTooLarge rejects uploads above the configured byte ceiling.
	ErrPayloadTooLarge = errors.New("payload too large")
)

// StoredFile is what a successful save hands back to the caller: a stable
// relative path and a fully-qualified URL the browser and the inference
// provider can both fetch.
type StoredFile struct {
	Path     string
	FullURL  string
	Filename string
}

// Store persists uploaded image bytes. It does not write ledger rows; that
// is the caller's job.
type Store interface {
	Save(originalFilename, mimeType string, data []byte) (*StoredFile, error)
}

// extensions doubles as the MIME allowlist.
var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// checkPayload validates MIME type and size before any bytes are written and
// returns the file extension for the stored name.
func checkPayload(mimeType string, size, maxBytes int64) (string, error) {
	ext, ok := extensions[mimeType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mimeType)
	}
	if size > maxBytes {
		return "", fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrPayloadTooLarge, size, maxBytes)
	}
	return ext, nil
}
