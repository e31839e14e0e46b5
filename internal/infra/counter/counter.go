package counter

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// File persists one monotonically increasing capture index as a single
// decimal integer, compatible with the img.txt/vid.txt files the device
// has always used. Next never writes; Commit is called only after the
// capture succeeded.
type File struct {
	path string
	mu   sync.Mutex
}

func NewFile(path string) *File {
	return &File{path: path}
}

// Next returns the index the next capture should use: last persisted
// value plus one, or 1 when nothing has been persisted yet.
func (f *File) Next() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading counter: %w", err)
	}

	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return 1, nil
	}
	last, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing counter %q: %w", raw, err)
	}
	return last + 1, nil
}

func (f *File) Commit(value int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.WriteFile(f.path, []byte(strconv.Itoa(value)), 0644); err != nil {
		return fmt.Errorf("writing counter: %w", err)
	}
	return nil
}
