package repository

import (
	"ai-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoadmapRepository handles database operations for roadmaps
type RoadmapRepository struct {
	db *gorm.DB
}

// NewRoadmapRepository creates a new roadmap repository
func NewRoadmapRepository(db *gorm.DB) *RoadmapRepository {
	return &RoadmapRepository{db: db}
}

// Create inserts a roadmap as a single atomic row
func (r *RoadmapRepository) Create(roadmap *models.Roadmap) error {
	return r.db.Create(roadmap).Error
}

// GetByID retrieves a roadmap by ID
func (r *RoadmapRepository) GetByID(id uuid.UUID) (*models.Roadmap, error) {
	var roadmap models.Roadmap
	err := r.db.First(&roadmap, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &roadmap, nil
}

// GetAll retrieves roadmaps with pagination, newest first
func (r *RoadmapRepository) GetAll(limit, offset int) ([]models.Roadmap, int64, error) {
	var roadmaps []models.Roadmap
	var total int64

	// Get total count
	if err := r.db.Model(&models.Roadmap{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&roadmaps).Error
	if err != nil {
		return nil, 0, err
	}

	return roadmaps, total, nil
}
