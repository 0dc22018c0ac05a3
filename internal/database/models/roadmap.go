package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Initiative is a single actionable item within a roadmap phase
type Initiative struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority" validate:"required"`
}

// Phase is one of the three fixed windows of a roadmap
type Phase struct {
	Label       string       `json:"label"`
	Timeframe   string       `json:"timeframe"`
	Initiatives []Initiative `json:"initiatives"`
}

// PhaseList stores the ordered phases as a jsonb column
type PhaseList []Phase

// Value implements driver.Valuer for jsonb storage
func (p PhaseList) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner for jsonb retrieval
func (p *PhaseList) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	}
	return fmt.Errorf("unsupported type for PhaseList: %T", value)
}

// GoalList stores the selected goal tags as a jsonb column
type GoalList []string

// Value implements driver.Valuer for jsonb storage
func (g GoalList) Value() (driver.Value, error) {
	return json.Marshal(g)
}

// Scan implements sql.Scanner for jsonb retrieval
func (g *GoalList) Scan(value interface{}) error {
	if value == nil {
		*g = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, g)
	case string:
		return json.Unmarshal([]byte(v), g)
	}
	return fmt.Errorf("unsupported type for GoalList: %T", value)
}

// Roadmap is one generated AI implementation roadmap. Records are written once
// by the orchestrator after a successful provider call and never mutated.
type Roadmap struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`

	// Originating request, denormalized for display
	OrganizationName string           `json:"organization_name" gorm:"size:200;not null"`
	OrganizationSize OrganizationSize `json:"organization_size" gorm:"size:50;not null"`
	Industry         string           `json:"industry" gorm:"size:200;not null"`
	AIMaturity       MaturityLevel    `json:"ai_maturity" gorm:"size:50;not null"`
	Goals            GoalList         `json:"goals" gorm:"type:jsonb;not null"`

	// Generated content
	Phases       PhaseList `json:"phases" gorm:"type:jsonb;not null"`
	MermaidChart string    `json:"mermaid_chart" gorm:"type:text"`
}

// TableName returns the table name for Roadmap
func (Roadmap) TableName() string {
	return "roadmaps"
}

// BeforeCreate sets the UUID if not already set
func (r *Roadmap) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
