package application

import (
	"context"
	"errors"
)

// ErrNotConfigured marks a provider whose credentials are absent. The
// feature degrades to a fixed spoken message; it never stops the loop.
var ErrNotConfigured = errors.New("provider not configured")

type Sender interface {
	Send(ctx context.Context, toNumber, body string) error
}
