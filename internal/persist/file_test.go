package persist

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	f, err := NewFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := f.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing file should be ErrNotFound, got %v", err)
	}

	payload := []byte(`{"repairs":[]}`)
	if err := f.Save(ctx, payload); err != nil {
		t.Fatal(err)
	}
	got, err := f.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(payload) {
		t.Fatalf("loaded %q, want %q", got, payload)
	}

	// Saves replace atomically, no temp file should linger.
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("temp file left behind after save")
	}
}

func TestFileCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")
	f, err := NewFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Save(context.Background(), []byte("{}")); err != nil {
		t.Fatal(err)
	}
}

func TestMemoryIsolation(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	payload := []byte(`{"a":1}`)
	if err := m.Save(ctx, payload); err != nil {
		t.Fatal(err)
	}
	got, err := m.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	// Mutating the returned slice must not corrupt the stored blob.
	got[0] = 'X'
	again, _ := m.Load(ctx)
	if string(again) != `{"a":1}` {
		t.Fatalf("stored blob corrupted: %q", again)
	}
}
