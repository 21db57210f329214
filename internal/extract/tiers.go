package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	errNotBracketed = errors.New("text is not bounded by brackets")
	errNoArray      = errors.New("no array found in text")
	errNoQuestions  = errors.New("no question lines found in text")

	firstArrayPattern  = regexp.MustCompile(`(?s)\[.*\]`)
	objectArrayPattern = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)
	enumerationPattern = regexp.MustCompile(`^(?:\d+[.)]|[-*•])\s*`)
)

// Bracketed parses text that is itself a JSON array.
func Bracketed() Tier {
	return Tier{
		Name: "bracketed",
		Parse: func(raw string) ([]any, error) {
			trimmed := strings.TrimSpace(raw)
			if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]") {
				return nil, errNotBracketed
			}
			return parseArray(trimmed)
		},
	}
}

// FirstArray parses the span from the first '[' to the last ']'.
func FirstArray() Tier {
	return Tier{
		Name: "embedded_array",
		Parse: func(raw string) ([]any, error) {
			return parseMatch(firstArrayPattern, raw)
		},
	}
}

// ObjectArray parses the span that looks like an array of objects.
func ObjectArray() Tier {
	return Tier{
		Name: "object_array",
		Parse: func(raw string) ([]any, error) {
			return parseMatch(objectArrayPattern, raw)
		},
	}
}

// Repaired runs inner over the output of Repair.
func Repaired(inner Tier) Tier {
	return Tier{
		Name: "repaired_" + inner.Name,
		Parse: func(raw string) ([]any, error) {
			return inner.Parse(Repair(raw))
		},
	}
}

// QuestionLines treats every line containing a question mark as one item,
// stripping enumeration markers such as "1. " or "2) ". At most limit lines
// are returned.
func QuestionLines(limit int) Tier {
	return Tier{
		Name: "question_lines",
		Parse: func(raw string) ([]any, error) {
			items := make([]any, 0, limit)
			for _, line := range strings.Split(raw, "\n") {
				if len(items) >= limit {
					break
				}
				line = strings.TrimSpace(line)
				if !strings.Contains(line, "?") {
					continue
				}
				line = strings.TrimSpace(enumerationPattern.ReplaceAllString(line, ""))
				if line == "" {
					continue
				}
				items = append(items, line)
			}

			if len(items) == 0 {
				return nil, errNoQuestions
			}
			return items, nil
		},
	}
}

func parseMatch(pattern *regexp.Regexp, raw string) ([]any, error) {
	match := pattern.FindString(raw)
	if match == "" {
		return nil, errNoArray
	}
	return parseArray(match)
}

func parseArray(text string) ([]any, error) {
	var items []any
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, fmt.Errorf("parse array: %w", err)
	}
	if items == nil {
		return nil, errNoArray
	}
	return items, nil
}
