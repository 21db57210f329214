package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spigell/edumatch/internal/completion"
)

const (
	DefaultAPIKeyEnv = "GROQ_API_KEY"

	genericFailureMessage = "Failed to process your request. Please try again."
)

// ConfigurationError is returned when the completion API key is absent.
type ConfigurationError struct {
	EnvVar string
}

func (e *ConfigurationError) Error() string {
	return "API key not configured"
}

// ValidationError reports a malformed or incomplete request.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// MalformedResponseError reports a model reply that could not be coerced
// into the expected shape.
type MalformedResponseError struct {
	Operation Operation
	Reason    string
	Err       error
}

func (e *MalformedResponseError) Error() string {
	if e.Err == nil {
		return e.Reason
	}
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// Failure is the caller-facing description of an error.
type Failure struct {
	HTTPStatus int
	Error      string
	Message    string
}

// Describe maps err to the status code and texts returned to the caller.
// Upstream details never leave the process; they are only logged.
func Describe(err error) Failure {
	var (
		cfgErr       *ConfigurationError
		validationEr *ValidationError
		malformedErr *MalformedResponseError
		upstreamErr  *completion.UpstreamError
	)

	switch {
	case errors.As(err, &cfgErr):
		env := cfgErr.EnvVar
		if env == "" {
			env = DefaultAPIKeyEnv
		}
		return Failure{
			HTTPStatus: http.StatusBadRequest,
			Error:      cfgErr.Error(),
			Message:    fmt.Sprintf("Please set the %s environment variable", env),
		}
	case errors.As(err, &validationEr):
		return Failure{
			HTTPStatus: http.StatusBadRequest,
			Error:      validationEr.Reason,
			Message:    "Please check the request and try again.",
		}
	case errors.As(err, &malformedErr):
		return Failure{
			HTTPStatus: http.StatusInternalServerError,
			Error:      malformedErr.Reason,
			Message:    genericFailureMessage,
		}
	case errors.As(err, &upstreamErr):
		return Failure{
			HTTPStatus: http.StatusInternalServerError,
			Error:      "Completion API request failed",
			Message:    genericFailureMessage,
		}
	default:
		return Failure{
			HTTPStatus: http.StatusInternalServerError,
			Error:      "Internal error",
			Message:    genericFailureMessage,
		}
	}
}
