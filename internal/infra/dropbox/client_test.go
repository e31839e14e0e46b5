package dropbox_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"smart-glasses/internal/infra/dropbox"
)

func TestClient_Upload(t *testing.T) {
	dir := t.TempDir()
	capture := filepath.Join(dir, "img1.jpg")
	if err := os.WriteFile(capture, []byte("jpeg bytes"), 0644); err != nil {
		t.Fatalf("writing capture: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2/files/upload" {
			t.Errorf("path: got %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("authorization: got %q", got)
		}
		arg := r.Header.Get("Dropbox-API-Arg")
		if !strings.Contains(arg, "/SmartGlasses/img1.jpg") {
			t.Errorf("api arg: got %q", arg)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "jpeg bytes" {
			t.Errorf("body: got %q", body)
		}
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	client := dropbox.NewClientWithURL("test-token", "/SmartGlasses", server.URL)

	if err := client.Upload(context.Background(), capture); err != nil {
		t.Fatalf("Upload error: %v", err)
	}
}

func TestClient_UploadMissingFile(t *testing.T) {
	client := dropbox.NewClientWithURL("test-token", "/SmartGlasses", "http://unused")

	err := client.Upload(context.Background(), filepath.Join(t.TempDir(), "nope.jpg"))
	if err == nil {
		t.Error("expected error for missing capture")
	}
}
