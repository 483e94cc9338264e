package ledger

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/juraijvu/furn-newyear/internal/models"
)

// Masks, color applications, results and recent colors are append-only:
// there are no update operations, corrections are new rows.

func (c *Client) CreateSegmentationMask(mask *models.SegmentationMask) error {
	boundingBox := mask.BoundingBox
	if len(boundingBox) == 0 {
		boundingBox = []byte("{}")
	}
	err := c.db.QueryRow(`
		INSERT INTO segmentation_masks
			(id, image_id, click_x, click_y, mask_data, bounding_box, part_label, confidence, area, material, furniture_part)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`, mask.ID, mask.ImageID, mask.ClickX, mask.ClickY, mask.MaskData,
		[]byte(boundingBox), mask.PartLabel, mask.Confidence, mask.Area,
		mask.Material, mask.FurniturePart).Scan(&mask.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create segmentation mask: %w", translate(err))
	}

	return nil
}

func (c *Client) CreateColorApplication(app *models.ColorApplication) error {
	err := c.db.QueryRow(`
		INSERT INTO color_applications (id, project_id, mask_id, fill_hex, opacity, blend_mode)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, app.ID, app.ProjectID, app.MaskID, app.FillHex,
		app.Opacity, app.BlendMode).Scan(&app.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create color application: %w", translate(err))
	}

	return nil
}

func (c *Client) ListColorApplications(projectID uuid.UUID) ([]models.ColorApplication, error) {
	rows, err := c.db.Query(`
		SELECT id, project_id, mask_id, fill_hex, opacity, blend_mode, created_at
		FROM color_applications
		WHERE project_id = $1
		ORDER BY created_at DESC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list color applications: %w", err)
	}
	defer rows.Close()

	var apps []models.ColorApplication
	for rows.Next() {
		var app models.ColorApplication
		err := rows.Scan(
			&app.ID, &app.ProjectID, &app.MaskID, &app.FillHex,
			&app.Opacity, &app.BlendMode, &app.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan color application: %w", err)
		}
		apps = append(apps, app)
	}

	return apps, nil
}

func (c *Client) CreateProfessionalResult(result *models.ProfessionalResult) error {
	err := c.db.QueryRow(`
		INSERT INTO professional_results
			(id, project_id, mask_id, original_image_url, mask_url, result_url, prompt,
			 material, furniture_part, color, prompt_strength, mask_blur, processing_time_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at
	`, result.ID, result.ProjectID, result.MaskID, result.OriginalImageURL,
		result.MaskURL, result.ResultURL, result.Prompt, result.Material,
		result.FurniturePart, result.Color, result.PromptStrength,
		result.MaskBlur, result.ProcessingTimeMs).Scan(&result.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create professional result: %w", translate(err))
	}

	return nil
}

func (c *Client) ListProfessionalResults(projectID uuid.UUID) ([]models.ProfessionalResult, error) {
	rows, err := c.db.Query(`
		SELECT id, project_id, mask_id, original_image_url, mask_url, result_url, prompt,
		       material, furniture_part, color, prompt_strength, mask_blur, processing_time_ms, created_at
		FROM professional_results
		WHERE project_id = $1
		ORDER BY created_at DESC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list professional results: %w", err)
	}
	defer rows.Close()

	var results []models.ProfessionalResult
	for rows.Next() {
		var result models.ProfessionalResult
		err := rows.Scan(
			&result.ID, &result.ProjectID, &result.MaskID, &result.OriginalImageURL,
			&result.MaskURL, &result.ResultURL, &result.Prompt, &result.Material,
			&result.FurniturePart, &result.Color, &result.PromptStrength,
			&result.MaskBlur, &result.ProcessingTimeMs, &result.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan professional result: %w", err)
		}
		results = append(results, result)
	}

	return results, nil
}

func (c *Client) CreateRecentColor(color *models.RecentColor) error {
	err := c.db.QueryRow(`
		INSERT INTO recent_colors (id, project_id, hex, color_code, color_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING used_at
	`, color.ID, color.ProjectID, color.Hex,
		color.ColorCode, color.ColorName).Scan(&color.UsedAt)
	if err != nil {
		return fmt.Errorf("failed to create recent color: %w", translate(err))
	}

	return nil
}

// ListRecentColors returns the newest entries first. A nil projectID lists
// colors across all projects.
func (c *Client) ListRecentColors(projectID *uuid.UUID, limit int) ([]models.RecentColor, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, project_id, hex, color_code, color_name, used_at
		FROM recent_colors
		ORDER BY used_at DESC
		LIMIT $1
	`
	args := []interface{}{limit}
	if projectID != nil {
		query = `
			SELECT id, project_id, hex, color_code, color_name, used_at
			FROM recent_colors
			WHERE project_id = $2
			ORDER BY used_at DESC
			LIMIT $1
		`
		args = append(args, *projectID)
	}

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent colors: %w", err)
	}
	defer rows.Close()

	var colors []models.RecentColor
	for rows.Next() {
		var color models.RecentColor
		err := rows.Scan(
			&color.ID, &color.ProjectID, &color.Hex,
			&color.ColorCode, &color.ColorName, &color.UsedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recent color: %w", err)
		}
		colors = append(colors, color)
	}

	return colors, nil
}
