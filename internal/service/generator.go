package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"ai-roadmap-backend/internal/config"
	"ai-roadmap-backend/internal/database/models"
	apperrors "ai-roadmap-backend/internal/errors"
)

// maxResponseBytes caps how much of a provider reply is read. A reply past the
// cap is treated as malformed rather than buffered without bound.
const maxResponseBytes = 1 << 20

// retryDelay sits between the first failed attempt and the single retry
const retryDelay = 500 * time.Millisecond

// GenerationRequest carries the validated organization inputs into the provider call
type GenerationRequest struct {
	OrganizationName string
	OrganizationSize models.OrganizationSize
	Industry         string
	AIMaturity       models.MaturityLevel
	Goals            []string
}

// GeneratedRoadmap is the parsed provider output: three validated phases plus
// the chart text, which stays opaque to the core.
type GeneratedRoadmap struct {
	Phases       models.PhaseList
	MermaidChart string
}

// chatMessage is one message in a chat-completions request
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionRequest is the provider request body
type chatCompletionRequest struct {
	Model          string              `json:"model"`
	Messages       []chatMessage       `json:"messages"`
	MaxTokens      int                 `json:"max_tokens,omitempty"`
	ResponseFormat *chatResponseFormat `json:"response_format,omitempty"`
}

// chatResponseFormat requests a machine-parseable reply
type chatResponseFormat struct {
	Type string `json:"type"`
}

// chatCompletionResponse is the provider response body
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// providerError is the error envelope the provider returns on non-2xx statuses
type providerError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// providerRoadmap mirrors the JSON shape the system prompt demands
type providerRoadmap struct {
	Phases []struct {
		Label       string `json:"label"`
		Timeframe   string `json:"timeframe"`
		Initiatives []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Priority    string `json:"priority"`
		} `json:"initiatives"`
	} `json:"phases"`
	MermaidChart string `json:"mermaid_chart"`
}

// defaultPhases supplies the fixed labels and windows when the provider leaves
// them blank; the phase count and ordering still come from the reply.
var defaultPhases = [3]struct{ label, timeframe string }{
	{"Short-term", "0-6 months"},
	{"Medium-term", "6-12 months"},
	{"Long-term", "12-24 months"},
}

// GeneratorService calls the external text-generation provider and parses the
// reply into a typed roadmap. It holds no state beyond a lazily-built HTTP
// client with process-wide lifetime.
type GeneratorService struct {
	cfg *config.Config

	clientOnce sync.Once
	httpClient *http.Client
}

// NewGeneratorService creates a new generator service
func NewGeneratorService(cfg *config.Config) *GeneratorService {
	return &GeneratorService{cfg: cfg}
}

// client returns the shared HTTP client, building it on first use
func (s *GeneratorService) client() *http.Client {
	s.clientOnce.Do(func() {
		timeout := time.Duration(s.cfg.GenerationTimeoutSec) * time.Second
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		s.httpClient = &http.Client{Timeout: timeout}
	})
	return s.httpClient
}

// Generate builds the roadmap directive from the request, invokes the provider
// and parses the reply. Transient failures are retried once; rejected and
// malformed outcomes are terminal.
func (s *GeneratorService) Generate(ctx context.Context, req *GenerationRequest) (*GeneratedRoadmap, error) {
	payload, err := s.buildPayload(req)
	if err != nil {
		return nil, err
	}

	content, err := s.complete(ctx, payload)
	if err != nil {
		var genErr *apperrors.GenerationError
		if errors.As(err, &genErr) && genErr.Retryable() {
			select {
			case <-time.After(retryDelay):
			case <-ctx.Done():
				return nil, apperrors.NewGenerationError(apperrors.ProviderUnavailable, ctx.Err())
			}
			content, err = s.complete(ctx, payload)
		}
		if err != nil {
			return nil, err
		}
	}

	return parseRoadmap(content)
}

// buildPayload constructs the provider request body from the organization inputs
func (s *GeneratorService) buildPayload(req *GenerationRequest) ([]byte, error) {
	system, err := embeddedPrompts.ReadFile("prompts/system.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to read system prompt: %w", err)
	}

	goalsText := strings.Join(req.Goals, ", ")
	if goalsText == "" {
		goalsText = "General AI adoption"
	}

	user := fmt.Sprintf(`Please generate an AI Implementation Roadmap for the following organization:

- Organization Name: %s
- Organization Size: %s
- Industry: %s
- Current AI Maturity Level: %s
- Key Goals: %s

Provide a detailed roadmap with initiatives tailored to this organization's specific context and goals.`,
		req.OrganizationName, req.OrganizationSize, req.Industry, req.AIMaturity, goalsText)

	body := chatCompletionRequest{
		Model: s.cfg.OpenAIModel,
		Messages: []chatMessage{
			{Role: "system", Content: string(system)},
			{Role: "user", Content: user},
		},
		MaxTokens:      s.cfg.GenerationMaxTokens,
		ResponseFormat: &chatResponseFormat{Type: "json_object"},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal provider request: %w", err)
	}
	return payload, nil
}

// complete performs one chat-completions round trip and returns the reply content
func (s *GeneratorService) complete(ctx context.Context, payload []byte) (string, error) {
	url := strings.TrimRight(s.cfg.OpenAIBaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", apperrors.NewGenerationError(apperrors.ProviderRejected, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.OpenAIAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client().Do(req)
	if err != nil {
		// Transport failures and timeouts are transient by classification
		return "", apperrors.NewGenerationError(apperrors.ProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return "", apperrors.NewGenerationError(apperrors.ProviderUnavailable, err)
	}
	if len(body) > maxResponseBytes {
		return "", apperrors.NewGenerationError(apperrors.MalformedResponse,
			fmt.Errorf("provider reply exceeds %d bytes", maxResponseBytes))
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(resp.StatusCode, body)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", apperrors.NewGenerationError(apperrors.MalformedResponse,
			fmt.Errorf("failed to decode completion response: %w", err))
	}
	if len(completion.Choices) == 0 {
		return "", apperrors.NewGenerationError(apperrors.MalformedResponse,
			fmt.Errorf("completion response has no choices"))
	}

	return completion.Choices[0].Message.Content, nil
}

// classifyStatus maps a non-200 provider status to a GenerationError kind.
// Overload and server-side failures are retryable; credential and request
// errors are not.
func classifyStatus(status int, body []byte) error {
	var pe providerError
	_ = json.Unmarshal(body, &pe)
	msg := pe.Error.Message
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}
	cause := fmt.Errorf("provider returned status %d: %s", status, msg)

	if status == http.StatusTooManyRequests || status >= http.StatusInternalServerError {
		return apperrors.NewGenerationError(apperrors.ProviderUnavailable, cause)
	}
	return apperrors.NewGenerationError(apperrors.ProviderRejected, cause)
}

// parseRoadmap validates the reply content into a GeneratedRoadmap. Violations
// of the three-phase contract fail with MalformedResponse so nothing partial
// gets persisted.
func parseRoadmap(content string) (*GeneratedRoadmap, error) {
	var reply providerRoadmap
	if err := json.Unmarshal([]byte(stripFences(content)), &reply); err != nil {
		return nil, apperrors.NewGenerationError(apperrors.MalformedResponse,
			fmt.Errorf("reply is not valid JSON: %w", err))
	}

	if len(reply.Phases) != 3 {
		return nil, apperrors.NewGenerationError(apperrors.MalformedResponse,
			fmt.Errorf("expected 3 phases, got %d", len(reply.Phases)))
	}

	phases := make(models.PhaseList, 0, 3)
	for i, p := range reply.Phases {
		if len(p.Initiatives) == 0 {
			return nil, apperrors.NewGenerationError(apperrors.MalformedResponse,
				fmt.Errorf("phase %d has no initiatives", i+1))
		}

		phase := models.Phase{
			Label:     strings.TrimSpace(p.Label),
			Timeframe: strings.TrimSpace(p.Timeframe),
		}
		if phase.Label == "" {
			phase.Label = defaultPhases[i].label
		}
		if phase.Timeframe == "" {
			phase.Timeframe = defaultPhases[i].timeframe
		}

		for _, in := range p.Initiatives {
			title := strings.TrimSpace(in.Title)
			if title == "" {
				return nil, apperrors.NewGenerationError(apperrors.MalformedResponse,
					fmt.Errorf("phase %d contains an initiative without a title", i+1))
			}
			priority, ok := models.ParsePriority(in.Priority)
			if !ok {
				return nil, apperrors.NewGenerationError(apperrors.MalformedResponse,
					fmt.Errorf("invalid priority %q in phase %d", in.Priority, i+1))
			}
			phase.Initiatives = append(phase.Initiatives, models.Initiative{
				Title:       title,
				Description: strings.TrimSpace(in.Description),
				Priority:    priority,
			})
		}

		phases = append(phases, phase)
	}

	return &GeneratedRoadmap{
		Phases:       phases,
		MermaidChart: stripMermaidFence(reply.MermaidChart),
	}, nil
}

// stripFences removes a surrounding markdown code fence some models emit even
// when asked for a bare JSON object
func stripFences(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// stripMermaidFence unwraps a ```mermaid fence if the chart text arrived inside
// one; the chart itself stays opaque.
func stripMermaidFence(chart string) string {
	trimmed := strings.TrimSpace(chart)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```mermaid")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
