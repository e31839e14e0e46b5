package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"smart-glasses/internal/application"
)

// Client fetches a one-sentence summary from the Wikipedia REST API.
// Second stage of the knowledge fallback chain.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return NewClientWithURL("https://en.wikipedia.org/api/rest_v1")
}

func NewClientWithURL(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

type summaryResponse struct {
	Extract string `json:"extract"`
}

func (c *Client) Answer(ctx context.Context, query string) (string, error) {
	title := url.PathEscape(strings.ReplaceAll(strings.TrimSpace(query), " ", "_"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/page/summary/"+title, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("querying wikipedia: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", application.ErrNoAnswer
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wikipedia error: %s", resp.Status)
	}

	var result summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding summary: %w", err)
	}

	summary := firstSentence(result.Extract)
	if summary == "" {
		return "", application.ErrNoAnswer
	}
	return summary, nil
}

func firstSentence(extract string) string {
	extract = strings.TrimSpace(extract)
	if i := strings.Index(extract, ". "); i >= 0 {
		return extract[:i+1]
	}
	return extract
}
