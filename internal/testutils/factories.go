package testutils

import (
	"time"

	"ai-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
)

// RoadmapFactory provides methods to create test Roadmap data
type RoadmapFactory struct{}

// NewRoadmapFactory creates a new RoadmapFactory
func NewRoadmapFactory() *RoadmapFactory {
	return &RoadmapFactory{}
}

// Create creates a test Roadmap with default values
func (f *RoadmapFactory) Create() *models.Roadmap {
	return &models.Roadmap{
		ID:               uuid.New(),
		CreatedAt:        time.Now(),
		OrganizationName: "Test Organization",
		OrganizationSize: models.OrganizationSizeMedium,
		Industry:         "Retail",
		AIMaturity:       models.MaturityLevelPiloting,
		Goals:            models.GoalList{"automation", "efficiency"},
		Phases:           f.Phases(),
		MermaidChart:     "gantt\n    title AI Implementation Roadmap\n    dateFormat YYYY-MM\n    section Foundation\n    Data audit :2026-01, 3M",
	}
}

// WithOrganization sets a custom organization name
func (f *RoadmapFactory) WithOrganization(name string) *models.Roadmap {
	roadmap := f.Create()
	roadmap.OrganizationName = name
	return roadmap
}

// WithGoals sets custom goal tags
func (f *RoadmapFactory) WithGoals(goals ...string) *models.Roadmap {
	roadmap := f.Create()
	roadmap.Goals = models.GoalList(goals)
	return roadmap
}

// FactorySet provides access to all factories
type FactorySet struct {
	Roadmap *RoadmapFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Roadmap: NewRoadmapFactory(),
	}
}

// Phases returns the three fixed phases with one initiative each
func (f *RoadmapFactory) Phases() models.PhaseList {
	return models.PhaseList{
		{
			Label:     "Foundation",
			Timeframe: "0-6 months",
			Initiatives: []models.Initiative{
				{Title: "Data audit", Description: "Inventory data sources and quality", Priority: models.PriorityHigh},
			},
		},
		{
			Label:     "Expansion",
			Timeframe: "6-12 months",
			Initiatives: []models.Initiative{
				{Title: "Pilot automation", Description: "Automate one back-office workflow", Priority: models.PriorityMedium},
			},
		},
		{
			Label:     "Maturity",
			Timeframe: "12-24 months",
			Initiatives: []models.Initiative{
				{Title: "Scale rollout", Description: "Extend automation across departments", Priority: models.PriorityLow},
			},
		},
	}
}
