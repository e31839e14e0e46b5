package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileRecorder is the development capture source: each Record waits for
// a new audio file dropped into the watched directory and treats it as
// the captured utterance. Consumed files are renamed out of the way.
type FileRecorder struct {
	dir string
}

func NewFileRecorder(dir string) *FileRecorder {
	return &FileRecorder{dir: dir}
}

func (f *FileRecorder) Name() string {
	return "file"
}

func (f *FileRecorder) Start(_ context.Context) error {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("creating audio dir: %w", err)
	}
	return nil
}

func (f *FileRecorder) Stop() error {
	return nil
}

func (f *FileRecorder) Record(ctx context.Context) ([]byte, error) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			data, err := f.nextFile()
			if err != nil {
				return nil, err
			}
			if data != nil {
				return data, nil
			}
		}
	}
}

func (f *FileRecorder) nextFile() ([]byte, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("reading dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".wav" && ext != ".mp3" {
			continue
		}

		path := filepath.Join(f.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading file %s: %w", path, err)
		}
		if err := os.Rename(path, path+".processed"); err != nil {
			return nil, fmt.Errorf("marking file processed: %w", err)
		}
		return data, nil
	}

	return nil, nil
}
