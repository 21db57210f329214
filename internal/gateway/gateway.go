// Package gateway implements the assessment and matching operations: it builds
// prompts, calls the completion API once per request and coerces the model's
// reply into strictly shaped results.
package gateway

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/edumatch/internal/completion"
	"github.com/spigell/edumatch/internal/extract"
	"github.com/spigell/edumatch/internal/logger"
	"github.com/spigell/edumatch/internal/utils"
)

const defaultMaxLogLength = 200

// Config is the static configuration of a Gateway.
type Config struct {
	// APIKey is the completion API secret. The gateway only checks that it is
	// present; the Completer owns the actual credentials.
	APIKey string
	// APIKeyEnv names the variable operators should set when APIKey is empty.
	APIKeyEnv string
	// StrictMatch turns a total parse failure of match into an error instead
	// of answering with placeholder profiles.
	StrictMatch bool
	// MaxLogLength bounds prompt and reply previews in debug logs.
	MaxLogLength int
}

// Gateway is stateless and safe for concurrent use.
type Gateway struct {
	cfg       Config
	completer completion.Completer
	logger    *zap.Logger

	questions *extract.Pipeline
	teachers  *extract.Pipeline
}

// New creates a Gateway. completer may be nil when no API key is configured.
func New(cfg Config, completer completion.Completer, log *zap.Logger) *Gateway {
	if cfg.MaxLogLength <= 0 {
		cfg.MaxLogLength = defaultMaxLogLength
	}
	if strings.TrimSpace(cfg.APIKeyEnv) == "" {
		cfg.APIKeyEnv = DefaultAPIKeyEnv
	}

	return &Gateway{
		cfg:       cfg,
		completer: completer,
		logger:    logger.WithFields(log),
		questions: extract.NewPipeline(
			extract.Bracketed(),
			extract.FirstArray(),
			extract.QuestionLines(QuestionCount),
		),
		teachers: extract.NewPipeline(
			extract.Bracketed(),
			extract.ObjectArray(),
			extract.Repaired(extract.ObjectArray()),
		),
	}
}

// Handle validates req and runs the requested operation.
func (g *Gateway) Handle(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, &ValidationError{Reason: "request body is required"}
	}

	op := Operation(strings.TrimSpace(req.Type))
	log := logger.WithOperation(g.logger, string(op))

	if strings.TrimSpace(g.cfg.APIKey) == "" {
		log.Error("completion api key is not set", zap.String("env", g.cfg.APIKeyEnv))
		return nil, &ConfigurationError{EnvVar: g.cfg.APIKeyEnv}
	}

	log.Info("processing request")

	switch op {
	case OperationGenerate:
		return g.generate(ctx, log, req)
	case OperationEvaluate:
		return g.evaluate(ctx, log, req)
	case OperationMatch:
		return g.match(ctx, log, req)
	default:
		return nil, &ValidationError{Reason: "Invalid request type"}
	}
}

func (g *Gateway) complete(ctx context.Context, log *zap.Logger, prompt completion.Prompt) (string, error) {
	if g.completer == nil {
		return "", errors.New("completion client is not configured")
	}

	log.Debug("completion request",
		zap.Float32("temperature", prompt.Temperature),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt.User)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt.User, g.cfg.MaxLogLength)),
	)

	raw, err := g.completer.Complete(ctx, prompt)
	if err != nil {
		log.Error("completion request failed", zap.Error(err))
		return "", err
	}

	log.Debug("completion response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, g.cfg.MaxLogLength)),
	)

	return raw, nil
}

func required(value, field string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &ValidationError{Reason: field + " is required"}
	}
	return value, nil
}
