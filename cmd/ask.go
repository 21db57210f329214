package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/edumatch/internal/assessment"
	"github.com/spigell/edumatch/internal/gateway"
	"github.com/spigell/edumatch/internal/logger"
)

const (
	PromptFindTeachers = "Find teachers"
	PromptRetake       = "Retake the assessment"
	PromptExit         = "Exit"
)

var errExit = errors.New("exit requested")

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Take an assessment in the terminal and get matched with teachers",
	Run: func(cmd *cobra.Command, _ []string) {
		ask(cmd)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringP("subject", "s", "", "subject to be assessed in; asked interactively when empty")
	askCmd.Flags().StringP("grade", "g", "", "grade level; asked interactively when empty")
}

// session holds the caller-side state of one assessment.
type session struct {
	subject string
	grade   string

	questions []gateway.Question
	scores    []int
}

func (s *session) level() string {
	return assessment.Level(s.scores)
}

func ask(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	gw, err := newGateway(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the gateway", zap.Error(err))
	}

	subject, err := promptValue("Subject", cmd.Flag("subject").Value.String())
	if err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}

	grade, err := promptValue("Grade", cmd.Flag("grade").Value.String())
	if err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}

	for {
		s := &session{subject: subject, grade: grade}

		if err := runAssessment(ctx, gw, logger, s); err != nil {
			logger.Fatal("assessment failed", zap.Error(err))
		}

		if err := handleResult(ctx, gw, logger, s); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func runAssessment(ctx context.Context, gw *gateway.Gateway, logger *zap.Logger, s *session) error {
	resp, err := gw.Handle(ctx, &gateway.Request{
		Type:    string(gateway.OperationGenerate),
		Subject: s.subject,
		Grade:   s.grade,
	})
	if err != nil {
		return describe("generating questions", err)
	}
	s.questions = resp.Questions

	for i, question := range s.questions {
		answerPrompt := promptui.Prompt{
			Label: fmt.Sprintf("[%d/%d, %s] %s", i+1, len(s.questions), question.Difficulty, question.Text),
		}

		answer, err := answerPrompt.Run()
		if err != nil {
			return err
		}

		resp, err := gw.Handle(ctx, &gateway.Request{
			Type:               string(gateway.OperationEvaluate),
			Answer:             answer,
			QuestionDifficulty: string(question.Difficulty),
		})
		if err != nil {
			return describe("evaluating answer", err)
		}

		score := gateway.MinScore
		if resp.Score != nil {
			score = *resp.Score
		}
		s.scores = append(s.scores, score)

		logger.Info("answer evaluated",
			zap.String("difficulty", string(question.Difficulty)),
			zap.Int("score", score),
			zap.Int("max_score", gateway.MaxScore),
		)
	}

	logger.Info("assessment finished", zap.Ints("scores", s.scores), zap.String("level", s.level()))

	return nil
}

func handleResult(ctx context.Context, gw *gateway.Gateway, logger *zap.Logger, s *session) error {
	for {
		prompt := promptui.Select{
			Label: fmt.Sprintf("Your level: %s. Proceed?", s.level()),
			Items: []string{PromptFindTeachers, PromptRetake, PromptExit},
		}

		_, action, err := prompt.Run()
		if err != nil {
			return err
		}

		switch action {
		case PromptFindTeachers:
			if err := findTeachers(ctx, gw, logger, s); err != nil {
				return err
			}
		case PromptRetake:
			return nil
		case PromptExit:
			logger.Info("exiting", zap.String("reason", "got exit from prompt"))
			return errExit
		default:
			return fmt.Errorf("invalid action: %s", action)
		}
	}
}

func findTeachers(ctx context.Context, gw *gateway.Gateway, logger *zap.Logger, s *session) error {
	resp, err := gw.Handle(ctx, &gateway.Request{
		Type:            string(gateway.OperationMatch),
		Subject:         s.subject,
		Grade:           s.grade,
		DifficultyLevel: s.level(),
	})
	if err != nil {
		return describe("matching teachers", err)
	}

	// do not bother error since teacher profiles are plain strings
	pretty, _ := json.MarshalIndent(resp.Teachers, "", "  ")
	logger.Info(string(pretty), zap.Int("teachers count", len(resp.Teachers)))

	return nil
}

// promptValue returns preset when set, otherwise asks for a non-empty value.
func promptValue(label, preset string) (string, error) {
	if preset = strings.TrimSpace(preset); preset != "" {
		return preset, nil
	}

	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return fmt.Errorf("%s is required", strings.ToLower(label))
			}
			return nil
		},
	}

	value, err := prompt.Run()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(value), nil
}

func describe(action string, err error) error {
	failure := gateway.Describe(err)
	return fmt.Errorf("%s: %s (%s): %w", action, failure.Error, failure.Message, err)
}
