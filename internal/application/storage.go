package application

import "context"

type Uploader interface {
	Upload(ctx context.Context, path string) error
}

// NoopUploader stands in when no storage credential is configured;
// captures stay local and the upload step is skipped silently.
type NoopUploader struct{}

func (n *NoopUploader) Upload(_ context.Context, _ string) error {
	return nil
}
