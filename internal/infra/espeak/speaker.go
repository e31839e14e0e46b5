package espeak

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// Speaker synthesizes speech with espeak-ng and plays the resulting WAV.
// Speak blocks until playback finishes and a mutex serializes callers, so
// overlapping requests come out one after another in call order.
type Speaker struct {
	voice string
	speed int
	mu    sync.Mutex
}

func NewSpeaker(voice string, speed int) *Speaker {
	return &Speaker{voice: voice, speed: speed}
}

func (s *Speaker) Speak(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cmd := exec.CommandContext(ctx, "espeak-ng",
		"--stdout",
		"-v", s.voice,
		"-s", strconv.Itoa(s.speed),
		text,
	)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("synthesizing speech: %w", err)
	}

	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(out.Bytes())))
	if err != nil {
		return fmt.Errorf("decoding speech wav: %w", err)
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("initializing playback: %w", err)
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}
