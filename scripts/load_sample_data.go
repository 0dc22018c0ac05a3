package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"ai-roadmap-backend/internal/config"
	"ai-roadmap-backend/internal/database"
	"ai-roadmap-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type InitiativeData struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Priority    string `yaml:"priority"`
}

type PhaseData struct {
	Label       string           `yaml:"label"`
	Timeframe   string           `yaml:"timeframe"`
	Initiatives []InitiativeData `yaml:"initiatives"`
}

type RoadmapData struct {
	OrganizationName string      `yaml:"organization_name"`
	OrganizationSize string      `yaml:"organization_size"`
	Industry         string      `yaml:"industry"`
	AIMaturity       string      `yaml:"ai_maturity"`
	Goals            []string    `yaml:"goals"`
	Phases           []PhaseData `yaml:"phases"`
	MermaidChart     string      `yaml:"mermaid_chart,omitempty"`
}

// File structures
type RoadmapsFile struct {
	Roadmaps []RoadmapData `yaml:"roadmaps"`
}

func main() {
	log.Println("Loading sample roadmaps from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadRoadmapsFromYAML(db, filepath.Join("scripts", "data", "roadmaps.yaml")); err != nil {
		log.Fatalf("Failed to load sample roadmaps: %v", err)
	}

	log.Println("Sample roadmaps loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadRoadmapsFromYAML(db *gorm.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file RoadmapsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	loaded := 0
	for _, entry := range file.Roadmaps {
		roadmap, err := toRoadmap(&entry)
		if err != nil {
			return fmt.Errorf("invalid roadmap %q: %w", entry.OrganizationName, err)
		}

		// Skip entries already loaded on a previous run
		var count int64
		db.Model(&models.Roadmap{}).
			Where("organization_name = ?", roadmap.OrganizationName).
			Count(&count)
		if count > 0 {
			log.Printf("Skipping %q, already present", roadmap.OrganizationName)
			continue
		}

		if err := db.Create(roadmap).Error; err != nil {
			return fmt.Errorf("failed to insert roadmap %q: %w", entry.OrganizationName, err)
		}
		loaded++
	}

	log.Printf("Loaded %d roadmap(s) from %s", loaded, path)
	return nil
}

func toRoadmap(entry *RoadmapData) (*models.Roadmap, error) {
	size := models.OrganizationSize(entry.OrganizationSize)
	if !size.IsValid() {
		return nil, fmt.Errorf("invalid organization_size %q", entry.OrganizationSize)
	}
	maturity := models.MaturityLevel(entry.AIMaturity)
	if !maturity.IsValid() {
		return nil, fmt.Errorf("invalid ai_maturity %q", entry.AIMaturity)
	}
	if len(entry.Phases) != 3 {
		return nil, fmt.Errorf("expected 3 phases, got %d", len(entry.Phases))
	}

	phases := make(models.PhaseList, 0, 3)
	for i, p := range entry.Phases {
		if len(p.Initiatives) == 0 {
			return nil, fmt.Errorf("phase %d has no initiatives", i+1)
		}
		phase := models.Phase{Label: p.Label, Timeframe: p.Timeframe}
		for _, in := range p.Initiatives {
			priority, ok := models.ParsePriority(in.Priority)
			if !ok {
				return nil, fmt.Errorf("invalid priority %q in phase %d", in.Priority, i+1)
			}
			phase.Initiatives = append(phase.Initiatives, models.Initiative{
				Title:       in.Title,
				Description: in.Description,
				Priority:    priority,
			})
		}
		phases = append(phases, phase)
	}

	return &models.Roadmap{
		OrganizationName: entry.OrganizationName,
		OrganizationSize: size,
		Industry:         entry.Industry,
		AIMaturity:       maturity,
		Goals:            models.GoalList(entry.Goals),
		Phases:           phases,
		MermaidChart:     entry.MermaidChart,
	}, nil
}
