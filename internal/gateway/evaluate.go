package gateway

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var (
	exactScorePattern    = regexp.MustCompile(`^[0-5]$`)
	embeddedScorePattern = regexp.MustCompile(`\b[0-5]\b`)
)

func (g *Gateway) evaluate(ctx context.Context, log *zap.Logger, req *Request) (*Response, error) {
	difficulty, ok := ParseDifficulty(req.QuestionDifficulty)
	if !ok {
		return nil, &ValidationError{Reason: "questionDifficulty must be one of easy, intermediate, hard"}
	}

	log.Info("evaluating answer", zap.String("difficulty", string(difficulty)))

	answer := strings.TrimSpace(req.Answer)
	if answer == "" {
		log.Info("empty answer, skipping completion", zap.Int("score", MinScore))
		return scoreResponse(MinScore), nil
	}

	raw, err := g.complete(ctx, log, buildEvaluatePrompt(answer, difficulty))
	if err != nil {
		return nil, err
	}

	score := parseScore(raw)
	log.Info("evaluated answer", zap.Int("score", score))

	return scoreResponse(score), nil
}

// parseScore never fails: a reply without a standalone digit 0-5 scores 0.
func parseScore(raw string) int {
	text := strings.TrimSpace(raw)

	match := exactScorePattern.FindString(text)
	if match == "" {
		match = embeddedScorePattern.FindString(text)
	}
	if match == "" {
		return MinScore
	}

	score, err := strconv.Atoi(match)
	if err != nil {
		return MinScore
	}
	return score
}

func scoreResponse(score int) *Response {
	return &Response{Score: &score, Status: StatusSuccess}
}
