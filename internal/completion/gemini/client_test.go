package gemini

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/spigell/edumatch/internal/completion"
)

type generateCall struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

type fakeModels struct {
	resp  *genai.GenerateContentResponse
	err   error
	calls []generateCall
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls = append(f.calls, generateCall{model: model, contents: contents, config: config})
	return f.resp, f.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: content}}}
}

func TestGeneratorComplete(t *testing.T) {
	models := &fakeModels{resp: textResponse("[{\"name\": \"A\"}", " ", "]")}
	g := &Generator{models: models, model: "gemini-pro", logger: zap.NewNop()}

	out, err := g.Complete(context.Background(), completion.Prompt{
		System:      "system",
		User:        "message",
		Temperature: 0.7,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if out != "[{\"name\": \"A\"}\n]" {
		t.Fatalf("unexpected output: %q", out)
	}

	if len(models.calls) != 1 {
		t.Fatalf("expected a single call, got %d", len(models.calls))
	}

	call := models.calls[0]
	if call.model != "gemini-pro" {
		t.Fatalf("unexpected model: %s", call.model)
	}
	if call.config == nil || call.config.SystemInstruction == nil {
		t.Fatalf("expected system instruction to be set")
	}
	if got := call.config.SystemInstruction.Parts[0].Text; got != "system" {
		t.Fatalf("unexpected system instruction: %q", got)
	}
	if call.config.Temperature == nil || *call.config.Temperature != 0.7 {
		t.Fatalf("unexpected temperature: %v", call.config.Temperature)
	}
	if len(call.contents) != 1 || call.contents[0].Parts[0].Text != "message" {
		t.Fatalf("unexpected contents: %+v", call.contents)
	}
}

func TestGeneratorDoesNotRetry(t *testing.T) {
	models := &fakeModels{err: genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL", Message: "boom"}}
	g := &Generator{models: models, model: "gemini-pro", logger: zap.NewNop()}

	_, err := g.Complete(context.Background(), completion.Prompt{System: "sys", User: "msg"})
	if err == nil {
		t.Fatal("expected error")
	}

	var upstream *completion.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.StatusCode != http.StatusInternalServerError || upstream.Provider != Provider {
		t.Fatalf("unexpected upstream error: %+v", upstream)
	}

	if len(models.calls) != 1 {
		t.Fatalf("expected single call, got %d", len(models.calls))
	}
}

func TestGeneratorEmptyResponse(t *testing.T) {
	models := &fakeModels{resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{nil, {Content: nil}}}}
	g := &Generator{models: models, model: "gemini-pro", logger: zap.NewNop()}

	if _, err := g.Complete(context.Background(), completion.Prompt{User: "msg"}); !errors.Is(err, completion.ErrEmptyCompletion) {
		t.Fatalf("expected ErrEmptyCompletion, got %v", err)
	}
}

func TestGeneratorRequiresPrompt(t *testing.T) {
	g := &Generator{models: &fakeModels{}, model: "gemini-pro", logger: zap.NewNop()}

	if _, err := g.Complete(context.Background(), completion.Prompt{System: "sys"}); err == nil {
		t.Fatal("expected error for empty prompt")
	}

	var nilGenerator *Generator
	if _, err := nilGenerator.Complete(context.Background(), completion.Prompt{User: "msg"}); err == nil {
		t.Fatal("expected error for uninitialized generator")
	}
	if nilGenerator.Model() != "" {
		t.Fatal("expected empty model for nil generator")
	}
}
