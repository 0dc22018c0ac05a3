package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"ai-roadmap-backend/internal/database/models"
	apperrors "ai-roadmap-backend/internal/errors"
	"ai-roadmap-backend/internal/logger"
	"ai-roadmap-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoadmapService orchestrates a submission: validate, generate, persist
type RoadmapService struct {
	repo      repository.RoadmapRepositoryInterface
	generator GeneratorServiceInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewRoadmapService creates a new roadmap service
func NewRoadmapService(repo repository.RoadmapRepositoryInterface, generator GeneratorServiceInterface, validator *validator.Validate) *RoadmapService {
	return &RoadmapService{
		repo:      repo,
		generator: generator,
		validator: validator,
		log:       logger.New(),
	}
}

// SubmitRoadmapRequest represents the submission form. Bound from JSON or
// form-encoded bodies.
type SubmitRoadmapRequest struct {
	OrganizationName string   `json:"organization_name" form:"organization_name" validate:"required,min=1,max=200"`
	OrganizationSize string   `json:"organization_size" form:"organization_size" validate:"required"`
	Industry         string   `json:"industry" form:"industry" validate:"required,min=1,max=200"`
	AIMaturity       string   `json:"ai_maturity" form:"ai_maturity" validate:"required"`
	Goals            []string `json:"goals" form:"goals" validate:"required,min=1,dive,required"`
}

// RoadmapResponse represents a stored roadmap for API consumers
type RoadmapResponse struct {
	ID               uuid.UUID               `json:"id"`
	OrganizationName string                  `json:"organization_name"`
	OrganizationSize models.OrganizationSize `json:"organization_size"`
	Industry         string                  `json:"industry"`
	AIMaturity       models.MaturityLevel    `json:"ai_maturity"`
	Goals            []string                `json:"goals"`
	Phases           models.PhaseList        `json:"phases"`
	MermaidChart     string                  `json:"mermaid_chart"`
	CreatedAt        string                  `json:"created_at"`
}

// RoadmapSummary is one row of the listing endpoint
type RoadmapSummary struct {
	ID               uuid.UUID               `json:"id"`
	OrganizationName string                  `json:"organization_name"`
	OrganizationSize models.OrganizationSize `json:"organization_size"`
	Industry         string                  `json:"industry"`
	AIMaturity       models.MaturityLevel    `json:"ai_maturity"`
	CreatedAt        string                  `json:"created_at"`
}

// RoadmapListResponse represents a paginated list of roadmap summaries
type RoadmapListResponse struct {
	Roadmaps []RoadmapSummary `json:"roadmaps"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// HandleSubmit validates the form, generates a roadmap and persists it. The
// generator is never invoked for an invalid form, and a successful generation
// is stored exactly once.
func (s *RoadmapService) HandleSubmit(ctx context.Context, req *SubmitRoadmapRequest) (*RoadmapResponse, error) {
	if err := s.validateSubmit(req); err != nil {
		return nil, err
	}

	genReq := &GenerationRequest{
		OrganizationName: strings.TrimSpace(req.OrganizationName),
		OrganizationSize: models.OrganizationSize(req.OrganizationSize),
		Industry:         strings.TrimSpace(req.Industry),
		AIMaturity:       models.MaturityLevel(req.AIMaturity),
		Goals:            req.Goals,
	}

	generated, err := s.generator.Generate(ctx, genReq)
	if err != nil {
		return nil, err
	}

	roadmap := &models.Roadmap{
		OrganizationName: genReq.OrganizationName,
		OrganizationSize: genReq.OrganizationSize,
		Industry:         genReq.Industry,
		AIMaturity:       genReq.AIMaturity,
		Goals:            models.GoalList(genReq.Goals),
		Phases:           generated.Phases,
		MermaidChart:     generated.MermaidChart,
	}

	if err := s.repo.Create(roadmap); err != nil {
		// Regenerating is costly, so dump everything needed to recover the
		// record by hand before surfacing the failure.
		phasesJSON, _ := json.Marshal(generated.Phases)
		s.log.WithFields(map[string]interface{}{
			"organization_name": roadmap.OrganizationName,
			"organization_size": roadmap.OrganizationSize,
			"industry":          roadmap.Industry,
			"ai_maturity":       roadmap.AIMaturity,
			"goals":             strings.Join(req.Goals, ", "),
			"phases":            string(phasesJSON),
			"mermaid_chart":     generated.MermaidChart,
		}).Error("failed to persist generated roadmap")
		return nil, apperrors.NewPersistenceError(err)
	}

	return s.toResponse(roadmap), nil
}

// GetByID retrieves a stored roadmap by ID
func (s *RoadmapService) GetByID(id uuid.UUID) (*RoadmapResponse, error) {
	roadmap, err := s.GetRecord(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(roadmap), nil
}

// GetRecord retrieves the raw stored record, for the rendering endpoints
func (s *RoadmapService) GetRecord(id uuid.UUID) (*models.Roadmap, error) {
	roadmap, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoadmapNotFound
		}
		return nil, fmt.Errorf("failed to get roadmap: %w", err)
	}
	return roadmap, nil
}

// List retrieves roadmap summaries with pagination, newest first
func (s *RoadmapService) List(page, pageSize int) (*RoadmapListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	roadmaps, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list roadmaps: %w", err)
	}

	summaries := make([]RoadmapSummary, len(roadmaps))
	for i, r := range roadmaps {
		summaries[i] = RoadmapSummary{
			ID:               r.ID,
			OrganizationName: r.OrganizationName,
			OrganizationSize: r.OrganizationSize,
			Industry:         r.Industry,
			AIMaturity:       r.AIMaturity,
			CreatedAt:        r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return &RoadmapListResponse{
		Roadmaps: summaries,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// validateSubmit enforces the GenerationRequest constraints with field-level
// reasons, before any provider call.
func (s *RoadmapService) validateSubmit(req *SubmitRoadmapRequest) error {
	if err := s.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return apperrors.NewValidationError(fieldName(first.Field()), first.Tag())
		}
		return apperrors.NewValidationError("", err.Error())
	}

	if !models.OrganizationSize(req.OrganizationSize).IsValid() {
		return apperrors.NewValidationError("organization_size",
			fmt.Sprintf("must be one of small, medium, large, enterprise; got %q", req.OrganizationSize))
	}
	if !models.MaturityLevel(req.AIMaturity).IsValid() {
		return apperrors.NewValidationError("ai_maturity",
			fmt.Sprintf("must be one of none, exploring, piloting, scaling; got %q", req.AIMaturity))
	}
	for _, g := range req.Goals {
		if strings.TrimSpace(g) == "" {
			return apperrors.NewValidationError("goals", "goal tags must be non-empty")
		}
	}
	return nil
}

// fieldName maps struct field names back to their form/json names
func fieldName(structField string) string {
	switch structField {
	case "OrganizationName":
		return "organization_name"
	case "OrganizationSize":
		return "organization_size"
	case "Industry":
		return "industry"
	case "AIMaturity":
		return "ai_maturity"
	case "Goals":
		return "goals"
	}
	return structField
}

// toResponse converts a roadmap model to a response
func (s *RoadmapService) toResponse(r *models.Roadmap) *RoadmapResponse {
	return &RoadmapResponse{
		ID:               r.ID,
		OrganizationName: r.OrganizationName,
		OrganizationSize: r.OrganizationSize,
		Industry:         r.Industry,
		AIMaturity:       r.AIMaturity,
		Goals:            []string(r.Goals),
		Phases:           r.Phases,
		MermaidChart:     r.MermaidChart,
		CreatedAt:        r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
