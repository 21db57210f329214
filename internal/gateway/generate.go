package gateway

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/edumatch/internal/extract"
	"github.com/spigell/edumatch/internal/logger"
)

const notEnoughQuestions = "Not enough questions generated"

type questionItem struct {
	Text     string `json:"text"`
	Question string `json:"question"`
}

func (g *Gateway) generate(ctx context.Context, log *zap.Logger, req *Request) (*Response, error) {
	subject, err := required(req.Subject, "subject")
	if err != nil {
		return nil, err
	}
	grade, err := required(req.Grade, "grade")
	if err != nil {
		return nil, err
	}

	log.Info("generating questions", zap.String("subject", subject), zap.String("grade", grade))

	raw, err := g.complete(ctx, log, buildGeneratePrompt(subject, grade))
	if err != nil {
		return nil, err
	}

	questions, tier, err := parseQuestions(g.questions, raw)
	if err != nil {
		log.Error("parsing questions", zap.Error(err))
		return nil, err
	}

	log.Info("generated questions", zap.String(logger.FieldTier, tier), zap.Int("count", len(questions)))

	return &Response{Questions: questions, Status: StatusSuccess}, nil
}

// parseQuestions extracts exactly QuestionCount questions from raw. The
// difficulty reported by the model is discarded and reassigned by position.
func parseQuestions(p *extract.Pipeline, raw string) ([]Question, string, error) {
	res, err := p.Run(raw)
	if err != nil {
		return nil, "", &MalformedResponseError{Operation: OperationGenerate, Reason: notEnoughQuestions, Err: err}
	}

	texts := make([]string, 0, QuestionCount)
	for _, item := range res.Items {
		if text := questionText(item); text != "" {
			texts = append(texts, text)
		}
	}

	if len(texts) < QuestionCount {
		return nil, res.Tier, &MalformedResponseError{Operation: OperationGenerate, Reason: notEnoughQuestions}
	}

	questions := make([]Question, QuestionCount)
	for i := range questions {
		questions[i] = Question{Text: texts[i], Difficulty: Difficulties[i]}
	}

	return questions, res.Tier, nil
}

func questionText(item any) string {
	switch v := item.(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		var q questionItem
		if err := extract.Decode(v, &q); err != nil {
			return ""
		}
		if text := strings.TrimSpace(q.Text); text != "" {
			return text
		}
		return strings.TrimSpace(q.Question)
	default:
		return ""
	}
}
