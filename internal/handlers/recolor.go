package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/juraijvu/furn-newyear/internal/logger"
	"github.com/juraijvu/furn-newyear/internal/models"
	"github.com/juraijvu/furn-newyear/internal/recolor"
	"github.com/juraijvu/furn-newyear/internal/replicate"
)

type RecolorHandler struct {
	service *recolor.Service
	log     *logger.Logger
}

func NewRecolorHandler(service *recolor.Service, log *logger.Logger) *RecolorHandler {
	return &RecolorHandler{
		service: service,
		log:     log,
	}
}

// Segment serves the segmentation placeholder. Requires imageUrl; everything
// else is optional.
func (h *RecolorHandler) Segment(c *gin.Context) {
	var req models.SegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if req.ImageURL == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "imageUrl is required"})
		return
	}

	resp, err := h.service.Segment(req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Inpaint runs a generation against an explicit mask. Requires imageUrl,
// maskUrl and color; no external call is made until all three are present.
func (h *RecolorHandler) Inpaint(c *gin.Context) {
	var req models.InpaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if req.ImageURL == "" || req.MaskURL == "" || req.Color == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "imageUrl, maskUrl and color are required",
		})
		return
	}

	resp, err := h.service.Inpaint(req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Recolor is the one-shot flow: placeholder segmentation plus inpainting.
// Requires imageUrl and color.
func (h *RecolorHandler) Recolor(c *gin.Context) {
	var req models.RecolorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if req.ImageURL == "" || req.Color == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "imageUrl and color are required",
		})
		return
	}

	resp, err := h.service.Recolor(req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *RecolorHandler) respondServiceError(c *gin.Context, err error) {
	var providerErr *replicate.ProviderError
	switch {
	case errors.As(err, &providerErr):
		h.log.Error("inference provider failure", "status", providerErr.StatusCode, "message", providerErr.Message)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "inference provider failure",
			Message: providerErr.Message,
		})
	case errors.Is(err, replicate.ErrInvalidModelOutput):
		h.log.Error("unusable model output", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "invalid model output",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "recolor failed",
			Message: err.Error(),
		})
	}
}
