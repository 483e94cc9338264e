package handlers

import (
	"github.com/juraijvu/furn-newyear/internal/models"
)

func projectResponse(p *models.Project) models.ProjectResponse {
	resp := models.ProjectResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Description.Valid {
		resp.Description = p.Description.String
	}
	if p.PreviewImageURL.Valid {
		resp.PreviewImageURL = p.PreviewImageURL.String
	}
	return resp
}

func projectImageResponse(img *models.ProjectImage) models.ProjectImageResponse {
	return models.ProjectImageResponse{
		ID:                img.ID.String(),
		ProjectID:         img.ProjectID.String(),
		OriginalImagePath: img.OriginalImagePath,
		MimeType:          img.MimeType,
		Width:             img.Width,
		Height:            img.Height,
		CreatedAt:         img.CreatedAt,
	}
}

func colorApplicationResponse(app *models.ColorApplication) models.ColorApplicationResponse {
	return models.ColorApplicationResponse{
		ID:        app.ID.String(),
		ProjectID: app.ProjectID.String(),
		MaskID:    app.MaskID.String(),
		FillHex:   app.FillHex,
		Opacity:   app.Opacity,
		BlendMode: app.BlendMode,
		CreatedAt: app.CreatedAt,
	}
}

func professionalResultResponse(r *models.ProfessionalResult) models.ProfessionalResultResponse {
	resp := models.ProfessionalResultResponse{
		ID:               r.ID.String(),
		ProjectID:        r.ProjectID.String(),
		OriginalImageURL: r.OriginalImageURL,
		MaskURL:          r.MaskURL,
		ResultURL:        r.ResultURL,
		Prompt:           r.Prompt,
		Material:         r.Material,
		FurniturePart:    r.FurniturePart,
		Color:            r.Color,
		PromptStrength:   r.PromptStrength,
		MaskBlur:         r.MaskBlur,
		CreatedAt:        r.CreatedAt,
	}
	if r.MaskID.Valid {
		resp.MaskID = r.MaskID.UUID.String()
	}
	if r.ProcessingTimeMs.Valid {
		resp.ProcessingTimeMs = r.ProcessingTimeMs.Int64
	}
	return resp
}

func recentColorResponse(rc *models.RecentColor) models.RecentColorResponse {
	resp := models.RecentColorResponse{
		ID:     rc.ID.String(),
		Hex:    rc.Hex,
		UsedAt: rc.UsedAt,
	}
	if rc.ProjectID.Valid {
		resp.ProjectID = rc.ProjectID.UUID.String()
	}
	if rc.ColorCode.Valid {
		resp.ColorCode = rc.ColorCode.String
	}
	if rc.ColorName.Valid {
		resp.ColorName = rc.ColorName.String
	}
	return resp
}

func canvasStateResponse(cs *models.CanvasState) models.CanvasStateResponse {
	return models.CanvasStateResponse{
		ID:         cs.ID.String(),
		ProjectID:  cs.ProjectID.String(),
		CanvasJSON: cs.CanvasJSON,
		Zoom:       cs.Zoom,
		UpdatedAt:  cs.UpdatedAt,
	}
}
