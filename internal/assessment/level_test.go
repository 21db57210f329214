package assessment

import "testing"

func TestLevel(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   string
	}{
		{name: "empty", scores: nil, want: Beginner},
		{name: "all zero", scores: []int{0, 0, 0}, want: Beginner},
		{name: "boundary beginner", scores: []int{2, 2, 2}, want: Beginner},
		{name: "just above beginner", scores: []int{2, 2, 3}, want: Intermediate},
		{name: "boundary intermediate", scores: []int{3, 4}, want: Intermediate},
		{name: "advanced", scores: []int{4, 4, 3}, want: Advanced},
		{name: "perfect", scores: []int{5, 5, 5}, want: Advanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Level(tt.scores); got != tt.want {
				t.Fatalf("Level(%v) = %s, want %s", tt.scores, got, tt.want)
			}
		})
	}
}
