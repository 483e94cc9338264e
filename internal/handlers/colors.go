package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/juraijvu/furn-newyear/internal/ledger"
	"github.com/juraijvu/furn-newyear/internal/logger"
	"github.com/juraijvu/furn-newyear/internal/models"
)

type ColorsHandler struct {
	db  *ledger.Client
	log *logger.Logger
}

func NewColorsHandler(db *ledger.Client, log *logger.Logger) *ColorsHandler {
	return &ColorsHandler{
		db:  db,
		log: log,
	}
}

// CreateColorApplication binds a color choice to a mask. Appended, never
// updated.
func (h *ColorsHandler) CreateColorApplication(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	var req models.CreateColorApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid color application payload",
			Message: err.Error(),
		})
		return
	}

	if !models.IsHexColor(req.FillHex) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "fillHex must be a 7-character #RRGGBB value",
		})
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid projectId"})
		return
	}
	maskID, err := uuid.Parse(req.MaskID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid maskId"})
		return
	}

	opacity := req.Opacity
	if opacity == 0 {
		opacity = 1.0
	}
	blendMode := req.BlendMode
	if blendMode == "" {
		blendMode = "normal"
	}

	app := &models.ColorApplication{
		ID:        uuid.New(),
		ProjectID: projectID,
		MaskID:    maskID,
		FillHex:   req.FillHex,
		Opacity:   opacity,
		BlendMode: blendMode,
	}

	if err := h.db.CreateColorApplication(app); err != nil {
		respondLedgerError(c, err, "project or mask not found")
		return
	}

	c.JSON(http.StatusOK, colorApplicationResponse(app))
}

// ListRecentColors returns the newest swatches first. Duplicate hexes may
// appear; the picker dedups for display.
func (h *ColorsHandler) ListRecentColors(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	var projectID *uuid.UUID
	if raw := c.Query("projectId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid projectId"})
			return
		}
		projectID = &parsed
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	colors, err := h.db.ListRecentColors(projectID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list recent colors",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.RecentColorResponse, len(colors))
	for i := range colors {
		responses[i] = recentColorResponse(&colors[i])
	}

	c.JSON(http.StatusOK, responses)
}

func (h *ColorsHandler) CreateRecentColor(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	var req models.CreateRecentColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid recent color payload",
			Message: err.Error(),
		})
		return
	}

	if !models.IsHexColor(req.Hex) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "hex must be a 7-character #RRGGBB value",
		})
		return
	}

	color := &models.RecentColor{
		ID:  uuid.New(),
		Hex: req.Hex,
	}
	if req.ProjectID != "" {
		parsed, err := uuid.Parse(req.ProjectID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid projectId"})
			return
		}
		color.ProjectID = uuid.NullUUID{UUID: parsed, Valid: true}
	}
	if req.ColorCode != "" {
		color.ColorCode = sql.NullString{String: req.ColorCode, Valid: true}
	}
	if req.ColorName != "" {
		color.ColorName = sql.NullString{String: req.ColorName, Valid: true}
	}

	if err := h.db.CreateRecentColor(color); err != nil {
		respondLedgerError(c, err, "project not found")
		return
	}

	c.JSON(http.StatusOK, recentColorResponse(color))
}
