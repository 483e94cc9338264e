package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/juraijvu/furn-newyear/internal/logger"
	"github.com/juraijvu/furn-newyear/internal/models"
	"github.com/juraijvu/furn-newyear/internal/replicate"
)

// DiagnosticsHandler exposes provider connectivity probes for deployment
// debugging.
type DiagnosticsHandler struct {
	gateway *replicate.Client
	log     *logger.Logger
}

func NewDiagnosticsHandler(gateway *replicate.Client, log *logger.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		gateway: gateway,
		log:     log,
	}
}

func (h *DiagnosticsHandler) TestReplicate(c *gin.Context) {
	body, err := h.gateway.TestConnection()
	if err != nil {
		h.respondProbeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "connected",
		"account": json.RawMessage(body),
	})
}

func (h *DiagnosticsHandler) CheckModel(c *gin.Context) {
	owner := c.Param("owner")
	name := c.Param("name")
	if owner == "" || name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "owner and name are required"})
		return
	}

	body, err := h.gateway.CheckModel(owner, name)
	if err != nil {
		h.respondProbeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "available",
		"model":  json.RawMessage(body),
	})
}

func (h *DiagnosticsHandler) respondProbeError(c *gin.Context, err error) {
	var providerErr *replicate.ProviderError
	status := http.StatusInternalServerError
	if errors.As(err, &providerErr) && providerErr.StatusCode == http.StatusNotFound {
		status = http.StatusNotFound
	}
	h.log.Warn("provider probe failed", "error", err)
	c.JSON(status, models.ErrorResponse{
		Error:   "provider probe failed",
		Message: err.Error(),
	})
}
