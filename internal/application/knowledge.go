package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// ErrNoAnswer is a stage's "no answer" outcome. A miss, not a failure.
var ErrNoAnswer = errors.New("no answer")

type Answerer interface {
	Answer(ctx context.Context, query string) (string, error)
}

// Chain tries each answer stage in order and returns the first hit.
// Stage errors of any kind count as misses; the chain itself only ever
// returns ErrNoAnswer, never a provider error.
type Chain struct {
	stages []Answerer
	logger *slog.Logger
}

func NewChain(logger *slog.Logger, stages ...Answerer) *Chain {
	return &Chain{stages: stages, logger: logger}
}

func (c *Chain) Answer(ctx context.Context, query string) (string, error) {
	for _, stage := range c.stages {
		answer, err := stage.Answer(ctx, query)
		if err != nil {
			if !errors.Is(err, ErrNoAnswer) {
				c.logger.Warn("answer stage failed", "error", err)
			}
			continue
		}
		if strings.TrimSpace(answer) == "" {
			continue
		}
		return answer, nil
	}
	return "", ErrNoAnswer
}
