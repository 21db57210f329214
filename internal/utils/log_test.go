package utils

import "testing"

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "returns empty when limit non-positive",
			input:  "[{\"text\": \"q1?\"}]",
			limit:  0,
			expect: "",
		},
		{
			name:   "shorter than limit",
			input:  "4",
			limit:  10,
			expect: "4",
		},
		{
			name:   "truncates and adds ellipsis",
			input:  "Here are the questions",
			limit:  8,
			expect: "Here are...",
		},
		{
			name:   "flattens model reply onto one line",
			input:  "  Here are the questions:\n\n[\"q1?\",\t\"q2?\"]  ",
			limit:  100,
			expect: "Here are the questions: [\"q1?\", \"q2?\"]",
		},
		{
			name:   "counts runes not bytes",
			input:  "Пожалуйста",
			limit:  3,
			expect: "Пож...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
