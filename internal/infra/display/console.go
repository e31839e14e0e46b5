package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"smart-glasses/internal/domain"
)

// Console stands in for the wearable's OLED panel: a bordered two-line
// frame, clock on top, message below, clipped at the panel width. Every
// draw emits a full frame; nothing is carried between frames.
type Console struct {
	out   io.Writer
	style lipgloss.Style
}

func NewConsole(out io.Writer) *Console {
	return &Console{
		out: out,
		style: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(domain.DisplayColumns + 2),
	}
}

func (c *Console) Open() error {
	if c.out == nil {
		return fmt.Errorf("no output device")
	}
	return nil
}

func (c *Console) Render(clock, message string) error {
	frame := domain.Frame{Clock: clock, Message: clip(message)}
	if _, err := fmt.Fprintln(c.out, c.style.Render(frame.Clock+"\n"+frame.Message)); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

func (c *Console) Close() error {
	return nil
}

func clip(message string) string {
	runes := []rune(message)
	if len(runes) <= domain.DisplayColumns {
		return message
	}
	return string(runes[:domain.DisplayColumns])
}
