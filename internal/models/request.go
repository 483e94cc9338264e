package models

import "encoding/json"

type CreateProjectRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description,omitempty"`
	PreviewImageURL string `json:"previewImageUrl,omitempty"`
}

type UpdateProjectRequest struct {
	Name            string `json:"name,omitempty"`
	Description     string `json:"description,omitempty"`
	PreviewImageURL string `json:"previewImageUrl,omitempty"`
}

// CreateProjectImageRequest attaches an uploaded file to a project. Pixel
// dimensions come from the client, which decodes the image after upload.
type CreateProjectImageRequest struct {
	OriginalImagePath string `json:"originalImagePath" binding:"required"`
	MimeType          string `json:"mimeType" binding:"required"`
	Width             int    `json:"width" binding:"required"`
	Height            int    `json:"height" binding:"required"`
}

type SegmentRequest struct {
	ImageURL      string `json:"imageUrl"`
	ImageID       string `json:"imageId,omitempty"`
	ClickX        *int   `json:"clickX,omitempty"`
	ClickY        *int   `json:"clickY,omitempty"`
	AutoDetect    bool   `json:"autoDetect,omitempty"`
	Material      string `json:"material,omitempty"`
	FurniturePart string `json:"furniturePart,omitempty"`
}

type InpaintRequest struct {
	ImageURL       string   `json:"imageUrl"`
	MaskURL        string   `json:"maskUrl"`
	Color          string   `json:"color"`
	Material       string   `json:"material,omitempty"`
	FurniturePart  string   `json:"furniturePart,omitempty"`
	PromptStrength *float64 `json:"promptStrength,omitempty"`
	MaskBlur       *int     `json:"maskBlur,omitempty"`
	ProjectID      string   `json:"projectId,omitempty"`
	MaskID         string   `json:"maskId,omitempty"`
}

type RecolorRequest struct {
	ImageURL       string   `json:"imageUrl"`
	Color          string   `json:"color"`
	Material       string   `json:"material,omitempty"`
	FurniturePart  string   `json:"furniturePart,omitempty"`
	ClickX         *int     `json:"clickX,omitempty"`
	ClickY         *int     `json:"clickY,omitempty"`
	AutoDetect     bool     `json:"autoDetect,omitempty"`
	PromptStrength *float64 `json:"promptStrength,omitempty"`
	MaskBlur       *int     `json:"maskBlur,omitempty"`
	ProjectID      string   `json:"projectId,omitempty"`
}

type CreateColorApplicationRequest struct {
	ProjectID string  `json:"projectId" binding:"required"`
	MaskID    string  `json:"maskId" binding:"required"`
	FillHex   string  `json:"fillHex" binding:"required"`
	Opacity   float64 `json:"opacity"`
	BlendMode string  `json:"blendMode,omitempty"`
}

type CreateRecentColorRequest struct {
	ProjectID string `json:"projectId,omitempty"`
	Hex       string `json:"hex" binding:"required"`
	ColorCode string `json:"colorCode,omitempty"`
	ColorName string `json:"colorName,omitempty"`
}

type SaveCanvasRequest struct {
	CanvasJSON json.RawMessage `json:"canvasJson" binding:"required"`
	Zoom       float64         `json:"zoom"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
