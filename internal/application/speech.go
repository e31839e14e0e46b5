package application

import "context"

// Transcriber turns a recorded utterance into lower-cased text. The loop
// treats a failed transcription the same as an empty transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, wavData []byte) (string, error)
}

// Speaker voices a short phrase. Speak blocks until playback finishes;
// implementations must serialize overlapping calls so phrases come out in
// call order.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}
