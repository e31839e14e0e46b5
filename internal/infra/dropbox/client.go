package dropbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"smart-glasses/internal/infra"
)

// Client uploads captured media to Dropbox.
type Client struct {
	accessToken string
	folder      string
	httpClient  *http.Client
	baseURL     string
}

func NewClient(accessToken, folder string) *Client {
	return NewClientWithURL(accessToken, folder, "https://content.dropboxapi.com")
}

func NewClientWithURL(accessToken, folder, baseURL string) *Client {
	return &Client{
		accessToken: accessToken,
		folder:      folder,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
		baseURL:     baseURL,
	}
}

func (c *Client) Upload(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading capture: %w", err)
	}

	arg, err := json.Marshal(map[string]any{
		"path":       c.folder + "/" + filepath.Base(path),
		"mode":       "add",
		"autorename": true,
	})
	if err != nil {
		return fmt.Errorf("encoding upload arg: %w", err)
	}

	return infra.Retry(ctx, infra.DefaultBackoff(), func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/2/files/upload", bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
		req.Header.Set("Dropbox-API-Arg", string(arg))
		req.Header.Set("Content-Type", "application/octet-stream")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("uploading: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			respBody, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("dropbox error %d: %s", resp.StatusCode, string(respBody))
		}
		return nil
	})
}
