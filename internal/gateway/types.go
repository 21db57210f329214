package gateway

import "strings"

// Operation is the discriminator of a gateway request.
type Operation string

const (
	OperationGenerate Operation = "generate"
	OperationEvaluate Operation = "evaluate"
	OperationMatch    Operation = "match"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

const (
	// QuestionCount is the number of questions returned by generate.
	QuestionCount = 3
	// TeacherCount is the number of profiles returned by match.
	TeacherCount = 2

	MinScore = 0
	MaxScore = 5
)

// Difficulty is the tier of a generated question.
type Difficulty string

const (
	Easy         Difficulty = "easy"
	Intermediate Difficulty = "intermediate"
	Hard         Difficulty = "hard"
)

// Difficulties lists the question tiers in ascending order.
var Difficulties = []Difficulty{Easy, Intermediate, Hard}

// ParseDifficulty accepts a difficulty label regardless of case and surrounding space.
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Difficulties {
		if d == known {
			return d, true
		}
	}
	return "", false
}

// Question is a single generated assessment question.
type Question struct {
	Text       string     `json:"text"`
	Difficulty Difficulty `json:"difficulty"`
}

// TeacherProfile is a generated teacher suggestion. Every field is always set.
type TeacherProfile struct {
	Name          string `json:"name"`
	Expertise     string `json:"expertise"`
	Experience    string `json:"experience"`
	TeachingStyle string `json:"teachingStyle"`
	Availability  string `json:"availability"`
	Bio           string `json:"bio"`
}

// Request is the union of all operation inputs.
type Request struct {
	Type string `json:"type"`

	Subject string `json:"subject"`
	Grade   string `json:"grade"`

	Answer             string `json:"answer"`
	QuestionDifficulty string `json:"questionDifficulty"`

	DifficultyLevel string `json:"difficultyLevel"`
}

// Response is the success payload of an operation.
type Response struct {
	Questions []Question       `json:"questions,omitempty"`
	Score     *int             `json:"score,omitempty"`
	Teachers  []TeacherProfile `json:"teachers,omitempty"`
	Status    string           `json:"status"`
}
