package models

import (
	"encoding/json"
	"time"
)

type UploadResponse struct {
	Path     string `json:"path"`
	FullURL  string `json:"fullUrl"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Mimetype string `json:"mimetype"`
}

type ProjectResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	PreviewImageURL string    `json:"previewImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type ProjectDetailResponse struct {
	Project           ProjectResponse            `json:"project"`
	Images            []ProjectImageResponse     `json:"images"`
	ColorApplications []ColorApplicationResponse `json:"colorApplications"`
}

type ProjectImageResponse struct {
	ID                string    `json:"id"`
	ProjectID         string    `json:"projectId"`
	OriginalImagePath string    `json:"originalImagePath"`
	MimeType          string    `json:"mimeType"`
	Width             int       `json:"width"`
	Height            int       `json:"height"`
	CreatedAt         time.Time `json:"createdAt"`
}

type SegmentResponse struct {
	MaskID      string          `json:"maskId"`
	MaskURL     string          `json:"maskUrl"`
	PartLabel   string          `json:"partLabel"`
	BoundingBox json.RawMessage `json:"boundingBox"`
	Confidence  float64         `json:"confidence"`
	ClickX      *int            `json:"clickX,omitempty"`
	ClickY      *int            `json:"clickY,omitempty"`
}

// RecolorSettings echoes the tuning parameters a generation ran with.
type RecolorSettings struct {
	Material       string  `json:"material"`
	FurniturePart  string  `json:"furniturePart"`
	Color          string  `json:"color"`
	PromptStrength float64 `json:"promptStrength"`
	MaskBlur       int     `json:"maskBlur"`
	Model          string  `json:"model"`
}

type InpaintResponse struct {
	ResultURL string          `json:"resultUrl"`
	Prompt    string          `json:"prompt"`
	Settings  RecolorSettings `json:"settings"`
}

type RecolorResponse struct {
	ResultURL string          `json:"resultUrl"`
	MaskURL   string          `json:"maskUrl"`
	Prompt    string          `json:"prompt"`
	PartLabel string          `json:"partLabel"`
	Settings  RecolorSettings `json:"settings"`
}

type ColorApplicationResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	MaskID    string    `json:"maskId"`
	FillHex   string    `json:"fillHex"`
	Opacity   float64   `json:"opacity"`
	BlendMode string    `json:"blendMode"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProfessionalResultResponse struct {
	ID               string    `json:"id"`
	ProjectID        string    `json:"projectId"`
	MaskID           string    `json:"maskId,omitempty"`
	OriginalImageURL string    `json:"originalImageUrl"`
	MaskURL          string    `json:"maskUrl"`
	ResultURL        string    `json:"resultUrl"`
	Prompt           string    `json:"prompt"`
	Material         string    `json:"material"`
	FurniturePart    string    `json:"furniturePart"`
	Color            string    `json:"color"`
	PromptStrength   float64   `json:"promptStrength"`
	MaskBlur         int       `json:"maskBlur"`
	ProcessingTimeMs int64     `json:"processingTimeMs,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

type RecentColorResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId,omitempty"`
	Hex       string    `json:"hex"`
	ColorCode string    `json:"colorCode,omitempty"`
	ColorName string    `json:"colorName,omitempty"`
	UsedAt    time.Time `json:"usedAt"`
}

type CanvasStateResponse struct {
	ID         string          `json:"id"`
	ProjectID  string          `json:"projectId"`
	CanvasJSON json.RawMessage `json:"canvasJson"`
	Zoom       float64         `json:"zoom"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

type MaterialsResponse struct {
	Materials      []string `json:"materials"`
	FurnitureParts []string `json:"furnitureParts"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
