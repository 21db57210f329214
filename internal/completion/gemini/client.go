// Package gemini implements completion.Completer on top of the Google GenAI SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/spigell/edumatch/internal/completion"
)

const (
	Provider = "gemini"

	DefaultModel = "gemini-2.5-flash"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator wraps the Google GenAI client to provide system + user prompt completions.
type Generator struct {
	models contentGenerator
	model  string
	logger *zap.Logger
}

// NewGenerator creates a new Generator configured for the Gemini API backend.
func NewGenerator(ctx context.Context, apiKey, model string, logger *zap.Logger) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = DefaultModel
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{models: client.Models, model: model, logger: logger}, nil
}

// Complete sends the prompt to Gemini and returns the joined textual parts of the response.
func (g *Generator) Complete(ctx context.Context, prompt completion.Prompt) (string, error) {
	if g == nil || g.models == nil {
		return "", errors.New("gemini generator is not initialized")
	}

	user := strings.TrimSpace(prompt.User)
	if user == "" {
		return "", errors.New("prompt must not be empty")
	}

	temperature := prompt.Temperature
	config := &genai.GenerateContentConfig{Temperature: &temperature}
	if system := strings.TrimSpace(prompt.System); system != "" {
		config.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: system}}}
	}

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(user), config)
	if err != nil {
		return "", toUpstreamError(err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", completion.ErrEmptyCompletion
	}

	return output, nil
}

// Model returns the configured model identifier.
func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.model
}

func toUpstreamError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("generate content: %w", &completion.UpstreamError{
			Provider:   Provider,
			StatusCode: apiErr.Code,
			Body:       apiErr.Message,
		})
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return fmt.Errorf("generate content: %w", &completion.UpstreamError{
			Provider:   Provider,
			StatusCode: apiErrPtr.Code,
			Body:       apiErrPtr.Message,
		})
	}

	return fmt.Errorf("generate content: %w", err)
}
