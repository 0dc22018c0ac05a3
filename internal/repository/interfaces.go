package repository

import (
	"ai-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// RoadmapRepositoryInterface defines the interface for roadmap repository operations.
// The store is append-only from the application's perspective: no update or
// delete is exposed.
type RoadmapRepositoryInterface interface {
	Create(roadmap *models.Roadmap) error
	GetByID(id uuid.UUID) (*models.Roadmap, error)
	GetAll(limit, offset int) ([]models.Roadmap, int64, error)
}
