package gateway

import (
	"context"

	"go.uber.org/zap"

	"github.com/spigell/edumatch/internal/extract"
	"github.com/spigell/edumatch/internal/logger"
)

const placeholderTier = "placeholder"

type matchParams struct {
	grade   string
	subject string
	level   string
}

func (g *Gateway) match(ctx context.Context, log *zap.Logger, req *Request) (*Response, error) {
	var (
		p   matchParams
		err error
	)
	if p.grade, err = required(req.Grade, "grade"); err != nil {
		return nil, err
	}
	if p.subject, err = required(req.Subject, "subject"); err != nil {
		return nil, err
	}
	if p.level, err = required(req.DifficultyLevel, "difficultyLevel"); err != nil {
		return nil, err
	}

	log.Info("finding teachers",
		zap.String("grade", p.grade),
		zap.String("subject", p.subject),
		zap.String("difficulty_level", p.level),
	)

	raw, err := g.complete(ctx, log, buildMatchPrompt(p))
	if err != nil {
		return nil, err
	}

	teachers, tier, err := parseTeachers(g.teachers, raw, p, g.cfg.StrictMatch)
	if err != nil {
		log.Error("parsing teacher data", zap.Error(err))
		return nil, err
	}

	if tier == placeholderTier {
		log.Warn("teacher data could not be parsed, answering with placeholder profiles")
	}
	log.Info("matched teachers", zap.String(logger.FieldTier, tier), zap.Int("count", len(teachers)))

	return &Response{Teachers: teachers, Status: StatusSuccess}, nil
}

// parseTeachers returns exactly TeacherCount profiles. Profiles the model did
// not supply are taken from the placeholder set; when nothing usable was
// found the whole placeholder set is returned unless strict is set.
func parseTeachers(pipeline *extract.Pipeline, raw string, p matchParams, strict bool) ([]TeacherProfile, string, error) {
	res, err := pipeline.Run(raw)
	if err != nil {
		if strict {
			return nil, "", &MalformedResponseError{
				Operation: OperationMatch,
				Reason:    "Could not extract teacher data from response",
				Err:       err,
			}
		}
		return placeholderProfiles(p), placeholderTier, nil
	}

	teachers := make([]TeacherProfile, 0, TeacherCount)
	for _, item := range res.Items {
		if len(teachers) == TeacherCount {
			break
		}
		profile, ok := decodeProfile(item, p)
		if !ok {
			continue
		}
		teachers = append(teachers, profile)
	}

	if len(teachers) == 0 {
		if strict {
			return nil, res.Tier, &MalformedResponseError{
				Operation: OperationMatch,
				Reason:    "No teacher profiles found in API response",
			}
		}
		return placeholderProfiles(p), placeholderTier, nil
	}

	placeholders := placeholderProfiles(p)
	for len(teachers) < TeacherCount {
		teachers = append(teachers, placeholders[len(teachers)])
	}

	return teachers, res.Tier, nil
}
