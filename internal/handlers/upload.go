package handlers

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/juraijvu/furn-newyear/internal/logger"
	"github.com/juraijvu/furn-newyear/internal/models"
	"github.com/juraijvu/furn-newyear/internal/storage"
)

type UploadHandler struct {
	store storage.Store
	log   *logger.Logger
}

func NewUploadHandler(store storage.Store, log *logger.Logger) *UploadHandler {
	return &UploadHandler{
		store: store,
		log:   log,
	}
}

// Upload accepts a single multipart image under the "image" field, persists
// it, and returns the stable path plus the URL the browser and the inference
// provider can use. No ledger row is written here; the client attaches the
// image to a project in a follow-up call once it knows the pixel dimensions.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "no file uploaded",
			Message: "provide an image file under the \"image\" form field",
		})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to open uploaded file",
			Message: err.Error(),
		})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to read uploaded file",
			Message: err.Error(),
		})
		return
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = mimeTypeFromExtension(file.Filename)
	}

	stored, err := h.store.Save(file.Filename, mimeType, data)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrUnsupportedMediaType):
			c.JSON(http.StatusUnsupportedMediaType, models.ErrorResponse{
				Error:   "unsupported media type",
				Message: err.Error(),
			})
		case errors.Is(err, storage.ErrPayloadTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
				Error:   "payload too large",
				Message: err.Error(),
			})
		default:
			h.log.Error("upload write failed", "error", err, "filename", file.Filename)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "failed to store upload",
				Message: err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, models.UploadResponse{
		Path:     stored.Path,
		FullURL:  stored.FullURL,
		Filename: stored.Filename,
		Size:     int64(len(data)),
		Mimetype: mimeType,
	})
}

func mimeTypeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
