package extract

import (
	"encoding/json"
	"testing"
)

func TestRepair(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "quotes bare keys",
			input: `[{name: "Dr. Jane Smith", experience: "15 years"}]`,
			want:  `[{"name": "Dr. Jane Smith", "experience": "15 years"}]`,
		},
		{
			name:  "drops trailing commas",
			input: `[{"name": "A",}, ]`,
			want:  `[{"name": "A"} ]`,
		},
		{
			name:  "converts single quoted strings",
			input: `[{'name': 'Ms. O\'Neil', 'bio': 'Says "hi"'}]`,
			want:  `[{"name": "Ms. O'Neil", "bio": "Says \"hi\""}]`,
		},
		{
			name:  "keeps valid json untouched",
			input: `[{"name": "A", "tags": ["x", "y"], "years": 3}]`,
			want:  `[{"name": "A", "tags": ["x", "y"], "years": 3}]`,
		},
		{
			name:  "leaves apostrophes in prose alone",
			input: `Here's the list: [{name: 'A'}]`,
			want:  `Here's the list: [{"name": "A"}]`,
		},
		{
			name:  "nested objects and mixed problems",
			input: `{teachers: [{name: 'A', years: 10,}],}`,
			want:  `{"teachers": [{"name": "A", "years": 10}]}`,
		},
		{
			name:  "keeps commas inside strings",
			input: `[{bio: "Loves maths, physics,"}]`,
			want:  `[{"bio": "Loves maths, physics,"}]`,
		},
		{
			name:  "closes unterminated single quoted string",
			input: `[{name: 'A`,
			want:  `[{"name": "A"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Repair(tt.input); got != tt.want {
				t.Fatalf("Repair(%q)\n got: %s\nwant: %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestRepairProducesParseableProfiles(t *testing.T) {
	t.Parallel()

	raw := `[
  {name: 'Dr. Ada Lovelace', expertise: 'Algebra', experience: 12, teachingStyle: 'Socratic',},
  {name: 'Mr. Alan Turing', expertise: 'Logic', experience: '9 years', availability: 'Weekends',},
]`

	var profiles []map[string]any
	if err := json.Unmarshal([]byte(Repair(raw)), &profiles); err != nil {
		t.Fatalf("repaired text is not valid json: %v\n%s", err, Repair(raw))
	}

	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
	if profiles[0]["name"] != "Dr. Ada Lovelace" {
		t.Fatalf("unexpected first name: %v", profiles[0]["name"])
	}
	if profiles[1]["availability"] != "Weekends" {
		t.Fatalf("unexpected availability: %v", profiles[1]["availability"])
	}
}

func TestRepairIsDeterministic(t *testing.T) {
	t.Parallel()

	raw := `Sure: [{name: 'A', bio: 'x',}]`
	first := Repair(raw)
	for i := 0; i < 5; i++ {
		if got := Repair(raw); got != first {
			t.Fatalf("repair output changed between runs: %q vs %q", first, got)
		}
	}
}
