package application_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"smart-glasses/internal/application"
)

type answerFunc func(ctx context.Context, query string) (string, error)

func (f answerFunc) Answer(ctx context.Context, query string) (string, error) {
	return f(ctx, query)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestChainFirstStageWins(t *testing.T) {
	secondCalled := false
	chain := application.NewChain(discardLogger(),
		answerFunc(func(_ context.Context, _ string) (string, error) {
			return "structured answer", nil
		}),
		answerFunc(func(_ context.Context, _ string) (string, error) {
			secondCalled = true
			return "summary", nil
		}),
	)

	got, err := chain.Answer(context.Background(), "capital of france")
	if err != nil {
		t.Fatalf("Answer error: %v", err)
	}
	if got != "structured answer" {
		t.Errorf("answer: got %q, want %q", got, "structured answer")
	}
	if secondCalled {
		t.Error("second stage called despite first stage hit")
	}
}

func TestChainFallsThroughOnMiss(t *testing.T) {
	chain := application.NewChain(discardLogger(),
		answerFunc(func(_ context.Context, _ string) (string, error) {
			return "", application.ErrNoAnswer
		}),
		answerFunc(func(_ context.Context, _ string) (string, error) {
			return "Sunny, 20 degrees", nil
		}),
	)

	got, err := chain.Answer(context.Background(), "weather")
	if err != nil {
		t.Fatalf("Answer error: %v", err)
	}
	if got != "Sunny, 20 degrees" {
		t.Errorf("answer: got %q, want %q", got, "Sunny, 20 degrees")
	}
}

func TestChainTreatsStageErrorAsMiss(t *testing.T) {
	chain := application.NewChain(discardLogger(),
		answerFunc(func(_ context.Context, _ string) (string, error) {
			return "", errors.New("provider timeout")
		}),
		answerFunc(func(_ context.Context, _ string) (string, error) {
			return "fallback answer", nil
		}),
	)

	got, err := chain.Answer(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Answer error: %v", err)
	}
	if got != "fallback answer" {
		t.Errorf("answer: got %q, want %q", got, "fallback answer")
	}
}

func TestChainAllMiss(t *testing.T) {
	chain := application.NewChain(discardLogger(),
		answerFunc(func(_ context.Context, _ string) (string, error) {
			return "", application.ErrNoAnswer
		}),
		answerFunc(func(_ context.Context, _ string) (string, error) {
			return "", errors.New("boom")
		}),
	)

	_, err := chain.Answer(context.Background(), "anything")
	if !errors.Is(err, application.ErrNoAnswer) {
		t.Errorf("error: got %v, want ErrNoAnswer", err)
	}
}

func TestChainSkipsBlankAnswers(t *testing.T) {
	chain := application.NewChain(discardLogger(),
		answerFunc(func(_ context.Context, _ string) (string, error) {
			return "   ", nil
		}),
	)

	_, err := chain.Answer(context.Background(), "anything")
	if !errors.Is(err, application.ErrNoAnswer) {
		t.Errorf("error: got %v, want ErrNoAnswer", err)
	}
}
