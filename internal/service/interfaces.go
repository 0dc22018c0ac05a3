package service

import (
	"context"

	"ai-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// GeneratorServiceInterface defines the interface for the generation client
type GeneratorServiceInterface interface {
	Generate(ctx context.Context, req *GenerationRequest) (*GeneratedRoadmap, error)
}

// RoadmapServiceInterface defines the interface for the roadmap orchestrator
type RoadmapServiceInterface interface {
	HandleSubmit(ctx context.Context, req *SubmitRoadmapRequest) (*RoadmapResponse, error)
	GetByID(id uuid.UUID) (*RoadmapResponse, error)
	GetRecord(id uuid.UUID) (*models.Roadmap, error)
	List(page, pageSize int) (*RoadmapListResponse, error)
}
