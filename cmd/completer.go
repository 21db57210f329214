package cmd

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/edumatch/internal/completion"
	"github.com/spigell/edumatch/internal/completion/gemini"
	"github.com/spigell/edumatch/internal/completion/openai"
	"github.com/spigell/edumatch/internal/gateway"
	"github.com/spigell/edumatch/internal/logger"
	"github.com/spigell/edumatch/internal/secrets"
)

// newGateway resolves the API key and builds the gateway. A missing key is not
// fatal: the gateway answers every request with a configuration error instead.
func newGateway(ctx context.Context, config *Config, log *zap.Logger) (*gateway.Gateway, error) {
	apiKey, err := secrets.Load(secrets.Source{
		Name:  "completion api key",
		Value: config.Completion.APIKey,
		File:  config.Completion.APIKeyFile,
	})
	switch {
	case errors.Is(err, secrets.ErrNotConfigured):
		log.Warn("completion api key is not configured",
			zap.String("hint", "set GROQ_API_KEY, EDUMATCH_API_KEY_FILE or completion.api-key-file"),
		)
	case err != nil:
		return nil, err
	}

	var completer completion.Completer
	if apiKey != "" {
		completer, err = newCompleter(ctx, config.Completion, apiKey, log)
		if err != nil {
			return nil, fmt.Errorf("building completion client: %w", err)
		}
	}

	return gateway.New(gateway.Config{
		APIKey:       apiKey,
		APIKeyEnv:    gateway.DefaultAPIKeyEnv,
		StrictMatch:  config.Match.Strict,
		MaxLogLength: config.Completion.MaxLogLength,
	}, completer, log), nil
}

func newCompleter(ctx context.Context, cfg *CompletionConfig, apiKey string, log *zap.Logger) (completion.Completer, error) {
	switch cfg.Provider {
	case "", openai.Provider:
		client, err := openai.New(openai.Config{
			APIKey:  apiKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		}, logger.WithCommonFields(log, openai.Provider, cfg.Model))
		if err != nil {
			return nil, err
		}
		return client, nil
	case gemini.Provider:
		generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Model, logger.WithCommonFields(log, gemini.Provider, cfg.Model))
		if err != nil {
			return nil, err
		}
		return generator, nil
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s", cfg.Provider)
	}
}
