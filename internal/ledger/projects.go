package ledger

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/juraijvu/furn-newyear/internal/models"
)

func (c *Client) CreateProject(name, description, previewImageURL string) (*models.Project, error) {
	var project models.Project
	err := c.db.QueryRow(`
		INSERT INTO projects (id, name, description, preview_image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, preview_image_url, created_at, updated_at
	`, uuid.New(), name, nullString(description), nullString(previewImageURL)).Scan(
		&project.ID, &project.Name, &project.Description,
		&project.PreviewImageURL, &project.CreatedAt, &project.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", translate(err))
	}

	return &project, nil
}

func (c *Client) GetProject(projectID uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := c.db.QueryRow(`
		SELECT id, name, description, preview_image_url, created_at, updated_at
		FROM projects
		WHERE id = $1
	`, projectID).Scan(
		&project.ID, &project.Name, &project.Description,
		&project.PreviewImageURL, &project.CreatedAt, &project.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", translate(err))
	}

	return &project, nil
}

func (c *Client) ListProjects() ([]models.Project, error) {
	rows, err := c.db.Query(`
		SELECT id, name, description, preview_image_url, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var project models.Project
		err := rows.Scan(
			&project.ID, &project.Name, &project.Description,
			&project.PreviewImageURL, &project.CreatedAt, &project.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}

	return projects, nil
}

// UpdateProject overwrites only the fields present in the request; empty
// strings leave the stored value untouched.
func (c *Client) UpdateProject(projectID uuid.UUID, name, description, previewImageURL string) (*models.Project, error) {
	var project models.Project
	err := c.db.QueryRow(`
		UPDATE projects
		SET name = COALESCE(NULLIF($2, ''), name),
		    description = COALESCE(NULLIF($3, ''), description),
		    preview_image_url = COALESCE(NULLIF($4, ''), preview_image_url),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, description, preview_image_url, created_at, updated_at
	`, projectID, name, description, previewImageURL).Scan(
		&project.ID, &project.Name, &project.Description,
		&project.PreviewImageURL, &project.CreatedAt, &project.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", translate(err))
	}

	return &project, nil
}

// DeleteProject removes the project; images, masks, color applications,
// results and canvas state go with it via ON DELETE CASCADE.
func (c *Client) DeleteProject(projectID uuid.UUID) error {
	result, err := c.db.Exec(`
		DELETE FROM projects
		WHERE id = $1
	`, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("failed to delete project: %w", ErrNotFound)
	}

	return nil
}

func (c *Client) CreateProjectImage(image *models.ProjectImage) error {
	err := c.db.QueryRow(`
		INSERT INTO project_images (id, project_id, original_image_path, mime_type, width, height)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, image.ID, image.ProjectID, image.OriginalImagePath,
		image.MimeType, image.Width, image.Height).Scan(&image.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create project image: %w", translate(err))
	}

	return nil
}

func (c *Client) GetProjectImage(imageID uuid.UUID) (*models.ProjectImage, error) {
	var image models.ProjectImage
	err := c.db.QueryRow(`
		SELECT id, project_id, original_image_path, mime_type, width, height, created_at
		FROM project_images
		WHERE id = $1
	`, imageID).Scan(
		&image.ID, &image.ProjectID, &image.OriginalImagePath,
		&image.MimeType, &image.Width, &image.Height, &image.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get project image: %w", translate(err))
	}

	return &image, nil
}

func (c *Client) ListProjectImages(projectID uuid.UUID) ([]models.ProjectImage, error) {
	rows, err := c.db.Query(`
		SELECT id, project_id, original_image_path, mime_type, width, height, created_at
		FROM project_images
		WHERE project_id = $1
		ORDER BY created_at ASC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project images: %w", err)
	}
	defer rows.Close()

	var images []models.ProjectImage
	for rows.Next() {
		var image models.ProjectImage
		err := rows.Scan(
			&image.ID, &image.ProjectID, &image.OriginalImagePath,
			&image.MimeType, &image.Width, &image.Height, &image.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project image: %w", err)
		}
		images = append(images, image)
	}

	return images, nil
}

// UpsertCanvasState keeps exactly one canvas row per project;
// last writer wins.
func (c *Client) UpsertCanvasState(projectID uuid.UUID, canvasJSON json.RawMessage, zoom float64) (*models.CanvasState, error) {
	var state models.CanvasState
	err := c.db.QueryRow(`
		INSERT INTO canvas_states (id, project_id, canvas_json, zoom)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (project_id) DO UPDATE
		SET canvas_json = EXCLUDED.canvas_json,
		    zoom = EXCLUDED.zoom,
		    updated_at = NOW()
		RETURNING id, project_id, canvas_json, zoom, updated_at
	`, uuid.New(), projectID, []byte(canvasJSON), zoom).Scan(
		&state.ID, &state.ProjectID, (*[]byte)(&state.CanvasJSON), &state.Zoom, &state.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert canvas state: %w", translate(err))
	}

	return &state, nil
}

func (c *Client) GetCanvasState(projectID uuid.UUID) (*models.CanvasState, error) {
	var state models.CanvasState
	err := c.db.QueryRow(`
		SELECT id, project_id, canvas_json, zoom, updated_at
		FROM canvas_states
		WHERE project_id = $1
	`, projectID).Scan(
		&state.ID, &state.ProjectID, (*[]byte)(&state.CanvasJSON), &state.Zoom, &state.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get canvas state: %w", translate(err))
	}

	return &state, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
