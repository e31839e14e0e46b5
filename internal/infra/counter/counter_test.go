package counter_test

import (
	"os"
	"path/filepath"
	"testing"

	"smart-glasses/internal/infra/counter"
)

func TestFile_NextFromEmptyStorage(t *testing.T) {
	c := counter.NewFile(filepath.Join(t.TempDir(), "img.txt"))

	got, err := c.Next()
	if err != nil {
		t.Fatalf("Next error: %v", err)
	}
	if got != 1 {
		t.Errorf("Next: got %d, want 1", got)
	}
}

func TestFile_NextDoesNotWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.txt")
	c := counter.NewFile(path)

	if _, err := c.Next(); err != nil {
		t.Fatalf("Next error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Next created the counter file")
	}
}

func TestFile_CommitThenNext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.txt")
	c := counter.NewFile(path)

	for want := 1; want <= 5; want++ {
		got, err := c.Next()
		if err != nil {
			t.Fatalf("Next error: %v", err)
		}
		if got != want {
			t.Fatalf("Next: got %d, want %d", got, want)
		}
		if err := c.Commit(got); err != nil {
			t.Fatalf("Commit error: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading counter file: %v", err)
	}
	if string(data) != "5" {
		t.Errorf("file contents: got %q, want 5", data)
	}
}

func TestFile_BlankFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.txt")
	if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}
	c := counter.NewFile(path)

	got, err := c.Next()
	if err != nil {
		t.Fatalf("Next error: %v", err)
	}
	if got != 1 {
		t.Errorf("Next: got %d, want 1", got)
	}
}

func TestFile_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.txt")
	if err := os.WriteFile(path, []byte("not a number"), 0644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}
	c := counter.NewFile(path)

	if _, err := c.Next(); err == nil {
		t.Error("expected error for corrupt counter file")
	}
}
