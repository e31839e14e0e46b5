package application

import "context"

// Recorder captures one utterance from the wearable microphone. Record
// blocks for the configured listening window and returns WAV bytes.
type Recorder interface {
	Start(ctx context.Context) error
	Stop() error
	Record(ctx context.Context) ([]byte, error)
	Name() string
}
