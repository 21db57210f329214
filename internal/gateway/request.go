package gateway

import (
	"fmt"

	"github.com/spigell/edumatch/internal/extract"
)

// DecodeRequest builds a Request from a decoded JSON body. Scalar fields are
// weakly typed so that, for example, a numeric grade becomes "5".
func DecodeRequest(body map[string]any) (*Request, error) {
	if body == nil {
		return nil, &ValidationError{Reason: "request body is required"}
	}

	var req Request
	if err := extract.Decode(body, &req); err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("invalid request body: %v", err)}
	}

	return &req, nil
}
