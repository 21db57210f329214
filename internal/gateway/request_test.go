package gateway

import (
	"errors"
	"testing"
)

func TestDecodeRequest(t *testing.T) {
	req, err := DecodeRequest(map[string]any{
		"type":               "evaluate",
		"answer":             float64(12),
		"questionDifficulty": "hard",
		"grade":              float64(5),
		"unknown":            []any{"ignored"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Type != "evaluate" || req.Answer != "12" || req.Grade != "5" || req.QuestionDifficulty != "hard" {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestDecodeRequestNilBody(t *testing.T) {
	_, err := DecodeRequest(nil)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := map[string]Difficulty{
		"easy":          Easy,
		" Intermediate": Intermediate,
		"HARD":          Hard,
	}
	for input, want := range tests {
		got, ok := ParseDifficulty(input)
		if !ok || got != want {
			t.Fatalf("ParseDifficulty(%q) = %q, %v", input, got, ok)
		}
	}

	if _, ok := ParseDifficulty("expert"); ok {
		t.Fatal("expected unknown difficulty to be rejected")
	}
}
