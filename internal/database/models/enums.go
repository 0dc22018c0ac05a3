package models

import "strings"

// OrganizationSize defines the size brackets accepted on the submission form
type OrganizationSize string

const (
	OrganizationSizeSmall      OrganizationSize = "small"
	OrganizationSizeMedium     OrganizationSize = "medium"
	OrganizationSizeLarge      OrganizationSize = "large"
	OrganizationSizeEnterprise OrganizationSize = "enterprise"
)

// MaturityLevel defines the AI maturity stages accepted on the submission form
type MaturityLevel string

const (
	MaturityLevelNone      MaturityLevel = "none"
	MaturityLevelExploring MaturityLevel = "exploring"
	MaturityLevelPiloting  MaturityLevel = "piloting"
	MaturityLevelScaling   MaturityLevel = "scaling"
)

// Priority defines the priority of a roadmap initiative
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// IsValid checks if the OrganizationSize is valid
func (s OrganizationSize) IsValid() bool {
	switch s {
	case OrganizationSizeSmall, OrganizationSizeMedium, OrganizationSizeLarge, OrganizationSizeEnterprise:
		return true
	}
	return false
}

// IsValid checks if the MaturityLevel is valid
func (m MaturityLevel) IsValid() bool {
	switch m {
	case MaturityLevelNone, MaturityLevelExploring, MaturityLevelPiloting, MaturityLevelScaling:
		return true
	}
	return false
}

// IsValid checks if the Priority is valid
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ParsePriority normalizes a provider-supplied priority string. Providers are
// prompted for High/Medium/Low but casing varies between replies.
func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	return p, p.IsValid()
}
