package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/juraijvu/furn-newyear/internal/ledger"
	"github.com/juraijvu/furn-newyear/internal/logger"
	"github.com/juraijvu/furn-newyear/internal/models"
)

type ImagesHandler struct {
	db  *ledger.Client
	log *logger.Logger
}

func NewImagesHandler(db *ledger.Client, log *logger.Logger) *ImagesHandler {
	return &ImagesHandler{
		db:  db,
		log: log,
	}
}

// AttachImage records an uploaded file against a project. The client sends
// pixel dimensions after decoding the image in the browser; the server never
// decodes image bytes itself.
func (h *ImagesHandler) AttachImage(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req models.CreateProjectImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid image payload",
			Message: err.Error(),
		})
		return
	}

	image := &models.ProjectImage{
		ID:                uuid.New(),
		ProjectID:         projectID,
		OriginalImagePath: req.OriginalImagePath,
		MimeType:          req.MimeType,
		Width:             req.Width,
		Height:            req.Height,
	}

	if err := h.db.CreateProjectImage(image); err != nil {
		respondLedgerError(c, err, "project not found")
		return
	}

	c.JSON(http.StatusOK, projectImageResponse(image))
}
