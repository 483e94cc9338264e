package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/juraijvu/furn-newyear/internal/ledger"
	"github.com/juraijvu/furn-newyear/internal/logger"
	"github.com/juraijvu/furn-newyear/internal/models"
)

type CanvasHandler struct {
	db  *ledger.Client
	log *logger.Logger
}

func NewCanvasHandler(db *ledger.Client, log *logger.Logger) *CanvasHandler {
	return &CanvasHandler{
		db:  db,
		log: log,
	}
}

func (h *CanvasHandler) GetCanvas(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	state, err := h.db.GetCanvasState(projectID)
	if err != nil {
		respondLedgerError(c, err, "canvas state not found")
		return
	}

	c.JSON(http.StatusOK, canvasStateResponse(state))
}

// SaveCanvas upserts the project's single canvas row; last writer wins.
func (h *CanvasHandler) SaveCanvas(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req models.SaveCanvasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid canvas payload",
			Message: err.Error(),
		})
		return
	}

	zoom := req.Zoom
	if zoom == 0 {
		zoom = 1.0
	}

	state, err := h.db.UpsertCanvasState(projectID, req.CanvasJSON, zoom)
	if err != nil {
		respondLedgerError(c, err, "project not found")
		return
	}

	c.JSON(http.StatusOK, canvasStateResponse(state))
}
