package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// GenerationErrorKind classifies failures of the roadmap generation call.
type GenerationErrorKind string

const (
	// ProviderUnavailable covers transient transport failures: timeouts,
	// connection errors, 5xx and 429 responses. Resubmitting may succeed.
	ProviderUnavailable GenerationErrorKind = "provider_unavailable"
	// ProviderRejected covers terminal provider responses: invalid
	// credentials or an invalid request. Retrying is pointless.
	ProviderRejected GenerationErrorKind = "provider_rejected"
	// MalformedResponse means the provider answered but the reply did not
	// parse into a valid three-phase roadmap.
	MalformedResponse GenerationErrorKind = "malformed_response"
)

// GenerationError represents a failure of the external roadmap generation call
type GenerationError struct {
	Kind GenerationErrorKind
	Err  error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation failed (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("generation failed (%s)", e.Kind)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() comparison for GenerationError by kind
func (e *GenerationError) Is(target error) bool {
	t, ok := target.(*GenerationError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Retryable reports whether resubmitting the request may succeed
func (e *GenerationError) Retryable() bool {
	return e.Kind == ProviderUnavailable
}

// PersistenceError represents a storage failure after a successful generation
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrRoadmapNotFound = &NotFoundError{Entity: "roadmap"}
)

// Generation Errors
var (
	ErrProviderUnavailable = &GenerationError{Kind: ProviderUnavailable}
	ErrProviderRejected    = &GenerationError{Kind: ProviderRejected}
	ErrMalformedResponse   = &GenerationError{Kind: MalformedResponse}
)

// Configuration Errors
var (
	ErrDatabaseURLNotSet   = &ConfigurationError{Message: "DATABASE_URL is not configured"}
	ErrProviderKeyNotSet   = &ConfigurationError{Message: "OPENAI_API_KEY environment variable not set"}
	ErrSessionSecretNotSet = &ConfigurationError{Message: "SESSION_SECRET environment variable not set"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsGeneration checks if an error is a GenerationError
func IsGeneration(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persErr *PersistenceError
	return errors.As(err, &persErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// GenerationKind extracts the kind from a GenerationError, or "" if err is not one
func GenerationKind(err error) GenerationErrorKind {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return ""
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewGenerationError creates a new GenerationError wrapping a cause
func NewGenerationError(kind GenerationErrorKind, err error) error {
	return &GenerationError{Kind: kind, Err: err}
}

// NewPersistenceError wraps a storage failure
func NewPersistenceError(err error) error {
	return &PersistenceError{Err: err}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
