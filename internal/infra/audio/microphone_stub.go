//go:build !portaudio
// +build !portaudio

package audio

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// MicrophoneRecorder stub when portaudio is not available.
type MicrophoneRecorder struct {
	logger *slog.Logger
}

func NewMicrophoneRecorder(_ int, _ time.Duration, logger *slog.Logger) *MicrophoneRecorder {
	return &MicrophoneRecorder{logger: logger}
}

func (m *MicrophoneRecorder) Name() string {
	return "microphone"
}

func (m *MicrophoneRecorder) Start(_ context.Context) error {
	return fmt.Errorf("microphone not available: rebuild with -tags portaudio")
}

func (m *MicrophoneRecorder) Stop() error {
	return nil
}

func (m *MicrophoneRecorder) Record(_ context.Context) ([]byte, error) {
	return nil, fmt.Errorf("microphone not available")
}
