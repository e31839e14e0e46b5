package display_test

import (
	"bytes"
	"strings"
	"testing"

	"smart-glasses/internal/infra/display"
)

func TestConsole_Render(t *testing.T) {
	var out bytes.Buffer
	c := display.NewConsole(&out)

	if err := c.Open(); err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if err := c.Render("12:34", "Photo OK"); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	frame := out.String()
	if !strings.Contains(frame, "12:34") {
		t.Errorf("frame missing clock: %q", frame)
	}
	if !strings.Contains(frame, "Photo OK") {
		t.Errorf("frame missing message: %q", frame)
	}
}

func TestConsole_RenderClipsMessage(t *testing.T) {
	var out bytes.Buffer
	c := display.NewConsole(&out)

	if err := c.Render("12:34", "abcdefghijklmnopqrstuvwxyz"); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	frame := out.String()
	if !strings.Contains(frame, "abcdefghijklmnopq") {
		t.Errorf("frame missing clipped message: %q", frame)
	}
	if strings.Contains(frame, "abcdefghijklmnopqr") {
		t.Errorf("message not clipped at panel width: %q", frame)
	}
}

func TestConsole_RenderEmptyMessage(t *testing.T) {
	var out bytes.Buffer
	c := display.NewConsole(&out)

	if err := c.Render("12:34", ""); err != nil {
		t.Fatalf("Render error: %v", err)
	}
}

func TestConsole_OpenNoDevice(t *testing.T) {
	c := display.NewConsole(nil)

	if err := c.Open(); err == nil {
		t.Error("expected error for missing output device")
	}
}
