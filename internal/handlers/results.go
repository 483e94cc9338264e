package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/juraijvu/furn-newyear/internal/ledger"
	"github.com/juraijvu/furn-newyear/internal/logger"
	"github.com/juraijvu/furn-newyear/internal/models"
)

type ResultsHandler struct {
	db  *ledger.Client
	log *logger.Logger
}

func NewResultsHandler(db *ledger.Client, log *logger.Logger) *ResultsHandler {
	return &ResultsHandler{
		db:  db,
		log: log,
	}
}

// ListResults returns every recorded generation for a project, newest first.
func (h *ResultsHandler) ListResults(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.db.GetProject(projectID); err != nil {
		respondLedgerError(c, err, "project not found")
		return
	}

	results, err := h.db.ListProfessionalResults(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list results",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.ProfessionalResultResponse, len(results))
	for i := range results {
		responses[i] = professionalResultResponse(&results[i])
	}

	c.JSON(http.StatusOK, responses)
}
