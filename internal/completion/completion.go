// Package completion defines the contract for text-generation backends.
package completion

import (
	"context"
	"errors"
	"fmt"
)

// ErrEmptyCompletion is returned when the backend answered without any text.
var ErrEmptyCompletion = errors.New("completion api returned empty response")

// Prompt is a single system + user exchange sent to a backend.
type Prompt struct {
	System      string
	User        string
	Temperature float32
}

// Completer sends a prompt and returns the model's textual reply. A single
// attempt is made; failures are returned to the caller as is.
type Completer interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
	Model() string
}

// UpstreamError reports a non-2xx answer from the completion API.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return "upstream completion error"
	}
	if e.Body == "" {
		return fmt.Sprintf("%s api error: status=%d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s api error: status=%d body=%s", e.Provider, e.StatusCode, e.Body)
}
