package trivia

import (
	"context"

	"github.com/mroshb/trivia_bot/internal/game"
	"github.com/mroshb/trivia_bot/pkg/logger"
)

type fallbackSource struct {
	primary  game.QuestionSource
	fallback game.QuestionSource
}

// Fallback chains two sources: when the primary errors or comes back empty,
// the request is retried against the fallback.
func Fallback(primary, fallback game.QuestionSource) game.QuestionSource {
	return &fallbackSource{primary: primary, fallback: fallback}
}

func (s *fallbackSource) FetchQuestions(ctx context.Context, req game.FetchRequest) ([]game.Question, error) {
	questions, err := s.primary.FetchQuestions(ctx, req)
	if err == nil && len(questions) > 0 {
		return questions, nil
	}

	if err != nil {
		logger.Warn("Primary question source failed, trying fallback", "error", err)
	} else {
		logger.Warn("Primary question source returned no questions, trying fallback")
	}

	return s.fallback.FetchQuestions(ctx, req)
}
