package news

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// Fetcher pulls headline titles from an RSS feed.
type Fetcher struct {
	feedURL string
	parser  *gofeed.Parser
}

func NewFetcher(feedURL string) *Fetcher {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: 15 * time.Second}
	return &Fetcher{
		feedURL: feedURL,
		parser:  parser,
	}
}

func (f *Fetcher) Headlines(ctx context.Context, limit int) ([]string, error) {
	feed, err := f.parser.ParseURLWithContext(f.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}

	titles := make([]string, 0, limit)
	for _, item := range feed.Items {
		if len(titles) == limit {
			break
		}
		if item == nil || item.Title == "" {
			continue
		}
		titles = append(titles, item.Title)
	}
	return titles, nil
}
