package gateway

import (
	_ "embed"
	"strconv"
	"strings"

	"github.com/spigell/edumatch/internal/completion"
)

const (
	generateTemperature = 0.2
	evaluateTemperature = 0.1
	matchTemperature    = 0.7
)

var (
	//go:embed prompts/generate_system.md
	generateSystemPrompt string
	//go:embed prompts/generate_user.md
	generateUserTemplate string
	//go:embed prompts/evaluate_system.md
	evaluateSystemPrompt string
	//go:embed prompts/evaluate_user.md
	evaluateUserTemplate string
	//go:embed prompts/match_system.md
	matchSystemPrompt string
	//go:embed prompts/match_user.md
	matchUserTemplate string
)

func buildGeneratePrompt(subject, grade string) completion.Prompt {
	labels := make([]string, 0, len(Difficulties))
	for _, d := range Difficulties {
		labels = append(labels, string(d))
	}

	user := strings.NewReplacer(
		"{{COUNT}}", strconv.Itoa(QuestionCount),
		"{{SUBJECT}}", subject,
		"{{GRADE}}", grade,
		"{{DIFFICULTIES}}", strings.Join(labels, ", "),
	).Replace(generateUserTemplate)

	return completion.Prompt{
		System:      strings.TrimSpace(generateSystemPrompt),
		User:        strings.TrimSpace(user),
		Temperature: generateTemperature,
	}
}

func buildEvaluatePrompt(answer string, difficulty Difficulty) completion.Prompt {
	user := strings.NewReplacer(
		"{{DIFFICULTY}}", string(difficulty),
		"{{ANSWER}}", answer,
	).Replace(evaluateUserTemplate)

	return completion.Prompt{
		System:      strings.TrimSpace(evaluateSystemPrompt),
		User:        strings.TrimSpace(user),
		Temperature: evaluateTemperature,
	}
}

func buildMatchPrompt(p matchParams) completion.Prompt {
	user := strings.NewReplacer(
		"{{COUNT}}", strconv.Itoa(TeacherCount),
		"{{GRADE}}", p.grade,
		"{{SUBJECT}}", p.subject,
		"{{LEVEL}}", p.level,
	).Replace(matchUserTemplate)

	return completion.Prompt{
		System:      strings.TrimSpace(matchSystemPrompt),
		User:        strings.TrimSpace(user),
		Temperature: matchTemperature,
	}
}
