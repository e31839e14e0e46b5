package wolfram_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart-glasses/internal/application"
	"smart-glasses/internal/infra/wolfram"
)

func TestClient_Answer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("appid"); got != "test-app-id" {
			t.Errorf("appid: got %q", got)
		}
		if got := r.URL.Query().Get("i"); got != "capital of france" {
			t.Errorf("query: got %q", got)
		}
		w.Write([]byte("Paris\nsecond line is dropped"))
	}))
	defer server.Close()

	client := wolfram.NewClientWithURL("test-app-id", server.URL)

	got, err := client.Answer(context.Background(), "capital of france")
	if err != nil {
		t.Fatalf("Answer error: %v", err)
	}
	if got != "Paris" {
		t.Errorf("answer: got %q, want Paris", got)
	}
}

func TestClient_AnswerStripsBadChars(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("1+1 = 2; (two)|"))
	}))
	defer server.Close()

	client := wolfram.NewClientWithURL("test-app-id", server.URL)

	got, err := client.Answer(context.Background(), "one plus one")
	if err != nil {
		t.Fatalf("Answer error: %v", err)
	}
	if got != "2 two" {
		t.Errorf("answer: got %q, want %q", got, "2 two")
	}
}

func TestClient_AnswerNoResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no short answer available", http.StatusNotImplemented)
	}))
	defer server.Close()

	client := wolfram.NewClientWithURL("test-app-id", server.URL)

	_, err := client.Answer(context.Background(), "how do you feel")
	if !errors.Is(err, application.ErrNoAnswer) {
		t.Errorf("error: got %v, want ErrNoAnswer", err)
	}
}

func TestClient_AnswerUnconfigured(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("provider called without a credential")
	}))
	defer server.Close()

	client := wolfram.NewClientWithURL("", server.URL)

	_, err := client.Answer(context.Background(), "anything")
	if !errors.Is(err, application.ErrNoAnswer) {
		t.Errorf("error: got %v, want ErrNoAnswer", err)
	}
}

func TestClient_AnswerEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("  \nmore"))
	}))
	defer server.Close()

	client := wolfram.NewClientWithURL("test-app-id", server.URL)

	_, err := client.Answer(context.Background(), "anything")
	if !errors.Is(err, application.ErrNoAnswer) {
		t.Errorf("error: got %v, want ErrNoAnswer", err)
	}
}
