package models

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID              uuid.UUID
	Name            string
	Description     sql.NullString
	PreviewImageURL sql.NullString
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ProjectImage struct {
	ID                uuid.UUID
	ProjectID         uuid.UUID
	OriginalImagePath string
	MimeType          string
	Width             int
	Height            int
	CreatedAt         time.Time
}

// CanvasState holds the serialized editor canvas for a project. At most one
// row per project; saves overwrite.
type CanvasState struct {
	ID         uuid.UUID
	ProjectID  uuid.UUID
	CanvasJSON json.RawMessage
	Zoom       float64
	UpdatedAt  time.Time
}
