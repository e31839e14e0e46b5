package camera

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// LibCamera drives the capture binaries on the device. Capture is an
// opaque external program; a non-zero exit is the only failure signal.
type LibCamera struct {
	stillCommand string
	videoCommand string
}

func New(stillCommand, videoCommand string) *LibCamera {
	return &LibCamera{
		stillCommand: stillCommand,
		videoCommand: videoCommand,
	}
}

func (c *LibCamera) CapturePhoto(ctx context.Context, path string) error {
	return run(exec.CommandContext(ctx, c.stillCommand, "-n", "-o", path))
}

func (c *LibCamera) CaptureVideo(ctx context.Context, path string, window time.Duration) error {
	return run(exec.CommandContext(ctx, c.videoCommand,
		"-n",
		"-t", strconv.FormatInt(window.Milliseconds(), 10),
		"-o", path,
	))
}

// MP4Box wraps the raw h264 capture into an mp4 container.
type MP4Box struct {
	command string
}

func NewTranscoder(command string) *MP4Box {
	return &MP4Box{command: command}
}

func (t *MP4Box) Transcode(ctx context.Context, src, dst string) error {
	return run(exec.CommandContext(ctx, t.command, "-add", src, dst))
}

func run(cmd *exec.Cmd) error {
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", cmd.Path, err, bytes.TrimSpace(out))
	}
	return nil
}
