//go:build portaudio
// +build portaudio

package audio

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gordonklaus/portaudio"
)

const framesPerBuffer = 1024

// MicrophoneRecorder captures a fixed listening window from the default
// input device. There is no mid-capture cancellation beyond the context;
// the user waits out the window.
type MicrophoneRecorder struct {
	stream     *portaudio.Stream
	buffer     []int16
	sampleRate int
	window     time.Duration
	logger     *slog.Logger
}

func NewMicrophoneRecorder(sampleRate int, window time.Duration, logger *slog.Logger) *MicrophoneRecorder {
	return &MicrophoneRecorder{
		buffer:     make([]int16, framesPerBuffer),
		sampleRate: sampleRate,
		window:     window,
		logger:     logger,
	}
}

func (m *MicrophoneRecorder) Name() string {
	return "microphone"
}

func (m *MicrophoneRecorder) Start(_ context.Context) error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("initializing portaudio: %w", err)
	}

	stream, err := portaudio.OpenDefaultStream(1, 0, float64(m.sampleRate), framesPerBuffer, m.buffer)
	if err != nil {
		return fmt.Errorf("opening stream: %w", err)
	}
	m.stream = stream

	if err := m.stream.Start(); err != nil {
		return fmt.Errorf("starting stream: %w", err)
	}

	m.logger.Info("microphone started", "sampleRate", m.sampleRate, "window", m.window)
	return nil
}

func (m *MicrophoneRecorder) Stop() error {
	if m.stream != nil {
		m.stream.Stop()
		m.stream.Close()
	}
	portaudio.Terminate()
	return nil
}

func (m *MicrophoneRecorder) Record(ctx context.Context) ([]byte, error) {
	total := int(float64(m.sampleRate) * m.window.Seconds())
	samples := make([]int16, 0, total)

	for len(samples) < total {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := m.stream.Read(); err != nil {
			return nil, fmt.Errorf("reading from stream: %w", err)
		}
		samples = append(samples, m.buffer...)
	}

	return encodeWAV(samples[:total], m.sampleRate)
}
