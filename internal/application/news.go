package application

import "context"

type HeadlineFetcher interface {
	Headlines(ctx context.Context, limit int) ([]string, error)
}
