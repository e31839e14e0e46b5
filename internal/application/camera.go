package application

import (
	"context"
	"time"
)

type Camera interface {
	CapturePhoto(ctx context.Context, path string) error
	CaptureVideo(ctx context.Context, path string, window time.Duration) error
}

type Transcoder interface {
	Transcode(ctx context.Context, src, dst string) error
}
