package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/juraijvu/furn-newyear/internal/ledger"
	"github.com/juraijvu/furn-newyear/internal/logger"
	"github.com/juraijvu/furn-newyear/internal/models"
)

type ProjectsHandler struct {
	db  *ledger.Client
	log *logger.Logger
}

func NewProjectsHandler(db *ledger.Client, log *logger.Logger) *ProjectsHandler {
	return &ProjectsHandler{
		db:  db,
		log: log,
	}
}

func (h *ProjectsHandler) CreateProject(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid project payload",
			Message: err.Error(),
		})
		return
	}

	project, err := h.db.CreateProject(req.Name, req.Description, req.PreviewImageURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create project",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, projectResponse(project))
}

func (h *ProjectsHandler) ListProjects(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	projects, err := h.db.ListProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list projects",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = projectResponse(&projects[i])
	}

	c.JSON(http.StatusOK, responses)
}

// GetProject returns the project with its images and color applications, the
// shape the workspace screen loads in one call.
func (h *ProjectsHandler) GetProject(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	project, err := h.db.GetProject(projectID)
	if err != nil {
		respondLedgerError(c, err, "project not found")
		return
	}

	images, err := h.db.ListProjectImages(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list project images",
			Message: err.Error(),
		})
		return
	}

	apps, err := h.db.ListColorApplications(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list color applications",
			Message: err.Error(),
		})
		return
	}

	detail := models.ProjectDetailResponse{
		Project:           projectResponse(project),
		Images:            make([]models.ProjectImageResponse, len(images)),
		ColorApplications: make([]models.ColorApplicationResponse, len(apps)),
	}
	for i := range images {
		detail.Images[i] = projectImageResponse(&images[i])
	}
	for i := range apps {
		detail.ColorApplications[i] = colorApplicationResponse(&apps[i])
	}

	c.JSON(http.StatusOK, detail)
}

func (h *ProjectsHandler) UpdateProject(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid project payload",
			Message: err.Error(),
		})
		return
	}

	project, err := h.db.UpdateProject(projectID, req.Name, req.Description, req.PreviewImageURL)
	if err != nil {
		respondLedgerError(c, err, "project not found")
		return
	}

	c.JSON(http.StatusOK, projectResponse(project))
}

func (h *ProjectsHandler) DeleteProject(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.db.DeleteProject(projectID); err != nil {
		respondLedgerError(c, err, "project not found")
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "project deleted successfully"})
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// respondLedgerError maps ledger errors onto the HTTP taxonomy: ErrNotFound
// becomes 404, anything else 500.
func respondLedgerError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, ledger.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   notFoundMsg,
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "database error",
		Message: err.Error(),
	})
}
