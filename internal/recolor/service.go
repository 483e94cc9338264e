package recolor

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/juraijvu/furn-newyear/internal/ledger"
	"github.com/juraijvu/furn-newyear/internal/logger"
	"github.com/juraijvu/furn-newyear/internal/models"
	"github.com/juraijvu/furn-newyear/internal/prompts"
	"github.com/juraijvu/furn-newyear/internal/replicate"
)

const (
	DefaultPromptStrength = 0.85
	DefaultMaskBlur       = 8
)

// Service sequences one recolor request: resolve image reachability, build
// the prompt, invoke inference, record the outcome. Each call is independent;
// nothing is shared across requests.
type Service struct {
	gateway *replicate.Client
	db      *ledger.Client
	log     *logger.Logger
}

// NewService wires the orchestrator. db may be nil, in which case ledger
// writes are skipped and responses are still served.
func NewService(gateway *replicate.Client, db *ledger.Client, log *logger.Logger) *Service {
	return &Service{
		gateway: gateway,
		db:      db,
		log:     log,
	}
}

// Segment is a documented placeholder: no real segmentation runs. It picks
// the upstream model a real implementation would use (SAM-2 for a click,
// Grounded-SAM for auto-detect), echoes the input image as its own mask, and
// records the attempt.
func (s *Service) Segment(req models.SegmentRequest) (*models.SegmentResponse, error) {
	model := replicate.VersionSAM2
	if req.AutoDetect {
		model = replicate.VersionGroundedSAM
	}

	partLabel := req.FurniturePart
	if partLabel == "" {
		partLabel = "furniture part"
	}

	maskURL := s.gateway.ResolvePublicURL(req.ImageURL)
	boundingBox := json.RawMessage(`{"x":0,"y":0,"width":0,"height":0}`)
	maskID := uuid.New()

	if s.db != nil && req.ImageID != "" {
		if imageID, err := uuid.Parse(req.ImageID); err == nil {
			mask := &models.SegmentationMask{
				ID:            maskID,
				ImageID:       imageID,
				MaskData:      maskURL,
				BoundingBox:   boundingBox,
				PartLabel:     sql.NullString{String: partLabel, Valid: true},
				Confidence:    sql.NullFloat64{Float64: 1.0, Valid: true},
				Material:      req.Material,
				FurniturePart: req.FurniturePart,
			}
			if req.ClickX != nil {
				mask.ClickX = sql.NullInt64{Int64: int64(*req.ClickX), Valid: true}
			}
			if req.ClickY != nil {
				mask.ClickY = sql.NullInt64{Int64: int64(*req.ClickY), Valid: true}
			}
			if err := s.db.CreateSegmentationMask(mask); err != nil {
				s.log.Warn("failed to record segmentation mask", "error", err, "imageId", req.ImageID)
			}
		}
	}

	s.log.Info("segmentation placeholder served", "model", model, "autoDetect", req.AutoDetect)

	return &models.SegmentResponse{
		MaskID:      maskID.String(),
		MaskURL:     maskURL,
		PartLabel:   partLabel,
		BoundingBox: boundingBox,
		Confidence:  1.0,
		ClickX:      req.ClickX,
		ClickY:      req.ClickY,
	}, nil
}

// Inpaint runs a masked generation against the provider. An inference
// failure terminates the request with no ledger write.
func (s *Service) Inpaint(req models.InpaintRequest) (*models.InpaintResponse, error) {
	promptStrength := DefaultPromptStrength
	if req.PromptStrength != nil {
		promptStrength = *req.PromptStrength
	}
	maskBlur := DefaultMaskBlur
	if req.MaskBlur != nil {
		maskBlur = *req.MaskBlur
	}

	prompt := prompts.GenerateInpaintingPrompt(req.FurniturePart, req.Material, req.Color)

	start := time.Now()
	resultURL, err := s.gateway.Inpaint(replicate.InpaintParams{
		ImageURL:       req.ImageURL,
		MaskURL:        req.MaskURL,
		Prompt:         prompt,
		PromptStrength: promptStrength,
		MaskBlur:       maskBlur,
	})
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	s.recordResult(req.ProjectID, req.MaskID, req.ImageURL, req.MaskURL, resultURL, prompt,
		req.Material, req.FurniturePart, req.Color, promptStrength, maskBlur, elapsed)

	return &models.InpaintResponse{
		ResultURL: resultURL,
		Prompt:    prompt,
		Settings: models.RecolorSettings{
			Material:       req.Material,
			FurniturePart:  req.FurniturePart,
			Color:          req.Color,
			PromptStrength: promptStrength,
			MaskBlur:       maskBlur,
			Model:          replicate.VersionFluxFillPro,
		},
	}, nil
}

// Recolor is the single-call flow: placeholder segmentation, then inpainting
// constrained to the echoed mask.
func (s *Service) Recolor(req models.RecolorRequest) (*models.RecolorResponse, error) {
	segment, err := s.Segment(models.SegmentRequest{
		ImageURL:      req.ImageURL,
		ClickX:        req.ClickX,
		ClickY:        req.ClickY,
		AutoDetect:    req.AutoDetect,
		Material:      req.Material,
		FurniturePart: req.FurniturePart,
	})
	if err != nil {
		return nil, err
	}

	promptStrength := DefaultPromptStrength
	if req.PromptStrength != nil {
		promptStrength = *req.PromptStrength
	}
	maskBlur := DefaultMaskBlur
	if req.MaskBlur != nil {
		maskBlur = *req.MaskBlur
	}

	prompt := prompts.GenerateInpaintingPrompt(req.FurniturePart, req.Material, req.Color)

	start := time.Now()
	resultURL, err := s.gateway.Inpaint(replicate.InpaintParams{
		ImageURL:       req.ImageURL,
		MaskURL:        segment.MaskURL,
		Prompt:         prompt,
		PromptStrength: promptStrength,
		MaskBlur:       maskBlur,
	})
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	s.recordResult(req.ProjectID, "", req.ImageURL, segment.MaskURL, resultURL, prompt,
		req.Material, req.FurniturePart, req.Color, promptStrength, maskBlur, elapsed)

	return &models.RecolorResponse{
		ResultURL: resultURL,
		MaskURL:   segment.MaskURL,
		Prompt:    prompt,
		PartLabel: segment.PartLabel,
		Settings: models.RecolorSettings{
			Material:       req.Material,
			FurniturePart:  req.FurniturePart,
			Color:          req.Color,
			PromptStrength: promptStrength,
			MaskBlur:       maskBlur,
			Model:          replicate.VersionFluxFillPro,
		},
	}, nil
}

// recordResult writes the ProfessionalResult row. Best effort: the
// generation already succeeded, so a bookkeeping failure is logged rather
// than failing the request.
func (s *Service) recordResult(projectID, maskID, imageURL, maskURL, resultURL, prompt,
	material, furniturePart, color string, promptStrength float64, maskBlur int, elapsed time.Duration) {
	if s.db == nil || projectID == "" {
		return
	}

	parsedProject, err := uuid.Parse(projectID)
	if err != nil {
		s.log.Warn("skipping result record: bad project id", "projectId", projectID)
		return
	}

	result := &models.ProfessionalResult{
		ID:               uuid.New(),
		ProjectID:        parsedProject,
		OriginalImageURL: imageURL,
		MaskURL:          maskURL,
		ResultURL:        resultURL,
		Prompt:           prompt,
		Material:         material,
		FurniturePart:    furniturePart,
		Color:            color,
		PromptStrength:   promptStrength,
		MaskBlur:         maskBlur,
		ProcessingTimeMs: sql.NullInt64{Int64: elapsed.Milliseconds(), Valid: true},
	}
	if maskID != "" {
		if parsedMask, err := uuid.Parse(maskID); err == nil {
			result.MaskID = uuid.NullUUID{UUID: parsedMask, Valid: true}
		}
	}

	if err := s.db.CreateProfessionalResult(result); err != nil {
		s.log.Warn("failed to record professional result",
			"error", fmt.Sprintf("%v", err), "projectId", projectID)
	}
}
