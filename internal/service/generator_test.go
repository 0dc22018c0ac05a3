package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"ai-roadmap-backend/internal/config"
	"ai-roadmap-backend/internal/database/models"
	apperrors "ai-roadmap-backend/internal/errors"
	"ai-roadmap-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validReplyContent is a provider reply satisfying the three-phase contract.
// Priorities use the casing providers actually emit.
const validReplyContent = `{
	"phases": [
		{
			"label": "Foundation",
			"timeframe": "0-6 months",
			"initiatives": [
				{"title": "Data audit", "description": "Inventory data sources", "priority": "High"}
			]
		},
		{
			"label": "Expansion",
			"timeframe": "6-12 months",
			"initiatives": [
				{"title": "Pilot automation", "description": "Automate one workflow", "priority": "Medium"}
			]
		},
		{
			"label": "Maturity",
			"timeframe": "12-24 months",
			"initiatives": [
				{"title": "Scale rollout", "description": "Extend across departments", "priority": "low"}
			]
		}
	],
	"mermaid_chart": "gantt\n    title AI Implementation Roadmap"
}`

func generatorConfig(baseURL string) *config.Config {
	return &config.Config{
		OpenAIAPIKey:         "test-key",
		OpenAIBaseURL:        baseURL,
		OpenAIModel:          "gpt-4o",
		GenerationTimeoutSec: 5,
		GenerationMaxTokens:  1024,
	}
}

func generationRequest() *service.GenerationRequest {
	return &service.GenerationRequest{
		OrganizationName: "Acme Corp",
		OrganizationSize: models.OrganizationSizeMedium,
		Industry:         "Retail",
		AIMaturity:       models.MaturityLevelPiloting,
		Goals:            []string{"automation", "efficiency"},
	}
}

// completionBody wraps reply content in a chat-completions envelope
func completionBody(content string) string {
	envelope := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	}
	body, _ := json.Marshal(envelope)
	return string(body)
}

// stubProvider counts calls and replies with the configured handler
func stubProvider(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func TestGenerateSuccess(t *testing.T) {
	server, calls := stubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "gpt-4o", payload["model"])

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionBody(validReplyContent))
	})

	generator := service.NewGeneratorService(generatorConfig(server.URL))
	generated, err := generator.Generate(context.Background(), generationRequest())

	require.NoError(t, err)
	require.NotNil(t, generated)
	require.Len(t, generated.Phases, 3)
	assert.Equal(t, "Foundation", generated.Phases[0].Label)
	assert.Equal(t, "0-6 months", generated.Phases[0].Timeframe)
	assert.Equal(t, models.PriorityHigh, generated.Phases[0].Initiatives[0].Priority)
	assert.Equal(t, models.PriorityMedium, generated.Phases[1].Initiatives[0].Priority)
	assert.Equal(t, models.PriorityLow, generated.Phases[2].Initiatives[0].Priority)
	assert.Contains(t, generated.MermaidChart, "gantt")
	assert.Equal(t, int64(1), calls.Load())
}

func TestGenerateStripsCodeFences(t *testing.T) {
	fenced := "```json\n" + validReplyContent + "\n```"
	server, _ := stubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionBody(fenced))
	})

	generator := service.NewGeneratorService(generatorConfig(server.URL))
	generated, err := generator.Generate(context.Background(), generationRequest())

	require.NoError(t, err)
	require.Len(t, generated.Phases, 3)
}

func TestGenerateStripsMermaidFence(t *testing.T) {
	var reply map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(validReplyContent), &reply))
	reply["mermaid_chart"] = "```mermaid\ngantt\n    title AI Implementation Roadmap\n```"
	content, _ := json.Marshal(reply)

	server, _ := stubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionBody(string(content)))
	})

	generator := service.NewGeneratorService(generatorConfig(server.URL))
	generated, err := generator.Generate(context.Background(), generationRequest())

	require.NoError(t, err)
	assert.Equal(t, "gantt\n    title AI Implementation Roadmap", generated.MermaidChart)
}

func TestGenerateWrongPhaseCount(t *testing.T) {
	twoPhases := `{"phases": [
		{"label": "A", "timeframe": "0-6 months", "initiatives": [{"title": "x", "priority": "high"}]},
		{"label": "B", "timeframe": "6-12 months", "initiatives": [{"title": "y", "priority": "low"}]}
	], "mermaid_chart": ""}`

	server, calls := stubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionBody(twoPhases))
	})

	generator := service.NewGeneratorService(generatorConfig(server.URL))
	generated, err := generator.Generate(context.Background(), generationRequest())

	assert.Nil(t, generated)
	assert.Equal(t, apperrors.MalformedResponse, apperrors.GenerationKind(err))
	// Malformed replies are terminal, never retried
	assert.Equal(t, int64(1), calls.Load())
}

func TestGenerateInvalidPriority(t *testing.T) {
	server, _ := stubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionBody(`{"phases": [
			{"label": "A", "timeframe": "0-6 months", "initiatives": [{"title": "x", "priority": "urgent"}]},
			{"label": "B", "timeframe": "6-12 months", "initiatives": [{"title": "y", "priority": "low"}]},
			{"label": "C", "timeframe": "12-24 months", "initiatives": [{"title": "z", "priority": "low"}]}
		], "mermaid_chart": ""}`))
	})

	generator := service.NewGeneratorService(generatorConfig(server.URL))
	generated, err := generator.Generate(context.Background(), generationRequest())

	assert.Nil(t, generated)
	assert.Equal(t, apperrors.MalformedResponse, apperrors.GenerationKind(err))
}

func TestGenerateProviderRejected(t *testing.T) {
	server, calls := stubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`)
	})

	generator := service.NewGeneratorService(generatorConfig(server.URL))
	generated, err := generator.Generate(context.Background(), generationRequest())

	assert.Nil(t, generated)
	assert.Equal(t, apperrors.ProviderRejected, apperrors.GenerationKind(err))
	// Credential failures are terminal, never retried
	assert.Equal(t, int64(1), calls.Load())
}

func TestGenerateRetriesOnceWhenUnavailable(t *testing.T) {
	server, calls := stubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, `{"error": {"message": "overloaded", "type": "server_error"}}`)
	})

	generator := service.NewGeneratorService(generatorConfig(server.URL))
	generated, err := generator.Generate(context.Background(), generationRequest())

	assert.Nil(t, generated)
	assert.Equal(t, apperrors.ProviderUnavailable, apperrors.GenerationKind(err))
	// One original attempt plus exactly one retry
	assert.Equal(t, int64(2), calls.Load())
}

func TestGenerateRecoversOnRetry(t *testing.T) {
	var attempt atomic.Int64
	server, calls := stubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if attempt.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"error": {"message": "rate limited", "type": "rate_limit_error"}}`)
			return
		}
		fmt.Fprint(w, completionBody(validReplyContent))
	})

	generator := service.NewGeneratorService(generatorConfig(server.URL))
	generated, err := generator.Generate(context.Background(), generationRequest())

	require.NoError(t, err)
	require.NotNil(t, generated)
	assert.Equal(t, int64(2), calls.Load())
}

func TestGenerateEmptyChoices(t *testing.T) {
	server, _ := stubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices": []}`)
	})

	generator := service.NewGeneratorService(generatorConfig(server.URL))
	generated, err := generator.Generate(context.Background(), generationRequest())

	assert.Nil(t, generated)
	assert.Equal(t, apperrors.MalformedResponse, apperrors.GenerationKind(err))
}

func TestGenerateBlankLabelsGetDefaults(t *testing.T) {
	noLabels := `{"phases": [
		{"initiatives": [{"title": "x", "priority": "high"}]},
		{"initiatives": [{"title": "y", "priority": "medium"}]},
		{"initiatives": [{"title": "z", "priority": "low"}]}
	], "mermaid_chart": ""}`

	server, _ := stubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionBody(noLabels))
	})

	generator := service.NewGeneratorService(generatorConfig(server.URL))
	generated, err := generator.Generate(context.Background(), generationRequest())

	require.NoError(t, err)
	assert.Equal(t, "Short-term", generated.Phases[0].Label)
	assert.Equal(t, "0-6 months", generated.Phases[0].Timeframe)
	assert.Equal(t, "Medium-term", generated.Phases[1].Label)
	assert.Equal(t, "6-12 months", generated.Phases[1].Timeframe)
	assert.Equal(t, "Long-term", generated.Phases[2].Label)
	assert.Equal(t, "12-24 months", generated.Phases[2].Timeframe)
}
