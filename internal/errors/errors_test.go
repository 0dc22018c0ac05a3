package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("roadmap")

	assert.Equal(t, "roadmap not found", err.Error())
	assert.True(t, IsNotFound(err))
	assert.True(t, errors.Is(err, ErrRoadmapNotFound))
	assert.False(t, errors.Is(NewNotFoundError("other"), ErrRoadmapNotFound))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("goals", "goal tags must be non-empty")

	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "goals")

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "goals", validationErr.Field)
}

func TestGenerationErrorKinds(t *testing.T) {
	cause := fmt.Errorf("connection refused")

	unavailable := NewGenerationError(ProviderUnavailable, cause)
	rejected := NewGenerationError(ProviderRejected, cause)
	malformed := NewGenerationError(MalformedResponse, cause)

	assert.True(t, IsGeneration(unavailable))
	assert.Equal(t, ProviderUnavailable, GenerationKind(unavailable))
	assert.Equal(t, ProviderRejected, GenerationKind(rejected))
	assert.Equal(t, MalformedResponse, GenerationKind(malformed))

	assert.True(t, errors.Is(unavailable, ErrProviderUnavailable))
	assert.False(t, errors.Is(unavailable, ErrProviderRejected))
	assert.True(t, errors.Is(malformed, ErrMalformedResponse))
}

func TestGenerationErrorRetryable(t *testing.T) {
	var genErr *GenerationError

	assert.True(t, errors.As(NewGenerationError(ProviderUnavailable, nil), &genErr))
	assert.True(t, genErr.Retryable())

	assert.True(t, errors.As(NewGenerationError(ProviderRejected, nil), &genErr))
	assert.False(t, genErr.Retryable())

	assert.True(t, errors.As(NewGenerationError(MalformedResponse, nil), &genErr))
	assert.False(t, genErr.Retryable())
}

func TestGenerationErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("status 503")
	err := NewGenerationError(ProviderUnavailable, cause)

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "provider_unavailable")
	assert.Contains(t, err.Error(), "status 503")
}

func TestPersistenceError(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := NewPersistenceError(cause)

	assert.True(t, IsPersistence(err))
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "persistence failed")
}

func TestConfigurationError(t *testing.T) {
	assert.True(t, IsConfiguration(ErrDatabaseURLNotSet))
	assert.True(t, IsConfiguration(ErrProviderKeyNotSet))
	assert.True(t, IsConfiguration(ErrSessionSecretNotSet))
	assert.False(t, IsConfiguration(fmt.Errorf("plain error")))
}

func TestGenerationKindOnForeignError(t *testing.T) {
	assert.Equal(t, GenerationErrorKind(""), GenerationKind(fmt.Errorf("plain error")))
}
