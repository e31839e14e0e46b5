package twilio

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"smart-glasses/internal/application"
)

// Client sends SMS through the Twilio REST API. With no credentials it
// reports ErrNotConfigured so the handler can voice the fixed message.
type Client struct {
	accountSID string
	authToken  string
	fromNumber string
	httpClient *http.Client
	baseURL    string
}

func NewClient(accountSID, authToken, fromNumber string) *Client {
	return NewClientWithURL(accountSID, authToken, fromNumber, "https://api.twilio.com")
}

func NewClientWithURL(accountSID, authToken, fromNumber, baseURL string) *Client {
	return &Client{
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

func (c *Client) Send(ctx context.Context, toNumber, body string) error {
	if c.accountSID == "" || c.authToken == "" || c.fromNumber == "" {
		return application.ErrNotConfigured
	}

	data := url.Values{}
	data.Set("To", toNumber)
	data.Set("From", c.fromNumber)
	data.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("twilio error: %s", resp.Status)
	}

	return nil
}
