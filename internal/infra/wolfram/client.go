package wolfram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"smart-glasses/internal/application"
)

// badChars are stripped from answers because the speech synthesizer
// mis-pronounces them.
var badChars = []string{";", "|", "(", ")", "+", "=", "1"}

// Client queries the Wolfram Alpha short-answers endpoint. A missing
// credential, a 501 and an empty body are all misses, never errors the
// fallback chain has to care about.
type Client struct {
	appID      string
	httpClient *http.Client
	baseURL    string
}

func NewClient(appID string) *Client {
	return NewClientWithURL(appID, "https://api.wolframalpha.com")
}

func NewClientWithURL(appID, baseURL string) *Client {
	return &Client{
		appID:      appID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

func (c *Client) Answer(ctx context.Context, query string) (string, error) {
	if c.appID == "" {
		return "", application.ErrNoAnswer
	}

	params := url.Values{}
	params.Set("appid", c.appID)
	params.Set("i", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/result?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("querying wolfram: %w", err)
	}
	defer resp.Body.Close()

	// The short-answers API signals "no result" with a 501.
	if resp.StatusCode == http.StatusNotImplemented {
		return "", application.ErrNoAnswer
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wolfram error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading answer: %w", err)
	}

	answer := sanitize(string(body))
	if answer == "" {
		return "", application.ErrNoAnswer
	}
	return answer, nil
}

// sanitize keeps only the first line and drops the denylisted characters.
func sanitize(raw string) string {
	line, _, _ := strings.Cut(raw, "\n")
	for _, c := range badChars {
		line = strings.ReplaceAll(line, c, "")
	}
	return strings.TrimSpace(line)
}
