package models

import (
	"database/sql"
	"encoding/json"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// SegmentationMask is one segmentation attempt (manual click or auto-detect)
// against one uploaded image. Rows are append-only; corrections are new rows.
type SegmentationMask struct {
	ID            uuid.UUID
	ImageID       uuid.UUID
	ClickX        sql.NullInt64
	ClickY        sql.NullInt64
	MaskData      string
	BoundingBox   json.RawMessage
	PartLabel     sql.NullString
	Confidence    sql.NullFloat64
	Area          sql.NullInt64
	Material      string
	FurniturePart string
	CreatedAt     time.Time
}

// ColorApplication binds a color choice to a specific mask.
type ColorApplication struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	MaskID    uuid.UUID
	FillHex   string
	Opacity   float64
	BlendMode string
	CreatedAt time.Time
}

// ProfessionalResult is the durable record of one inference call's outcome.
type ProfessionalResult struct {
	ID               uuid.UUID
	ProjectID        uuid.UUID
	MaskID           uuid.NullUUID
	OriginalImageURL string
	MaskURL          string
	ResultURL        string
	Prompt           string
	Material         string
	FurniturePart    string
	Color            string
	PromptStrength   float64
	MaskBlur         int
	ProcessingTimeMs sql.NullInt64
	CreatedAt        time.Time
}

// RecentColor is an append-only recency entry; dedup is a presentation
// concern, not enforced here.
type RecentColor struct {
	ID        uuid.UUID
	ProjectID uuid.NullUUID
	Hex       string
	ColorCode sql.NullString
	ColorName sql.NullString
	UsedAt    time.Time
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether s is a 7-character #RRGGBB string.
func IsHexColor(s string) bool {
	return hexColorRe.MatchString(s)
}
