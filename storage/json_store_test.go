package storage

import (
	"os"
	"path/filepath"
	"testing"

	"ticket-value-alert/utils"
)

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "seen.json"), utils.NewLogger())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if got := store.Load(); len(got) != 0 {
		t.Errorf("missing state file should load as empty, got %v", got)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	store, err := NewFileStore(path, utils.NewLogger())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	want := []string{"aaa", "bbb", "ccc"}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := store.Load()
	if len(got) != len(want) {
		t.Fatalf("Load: got %d fingerprints, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fingerprint[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestFileStoreCorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	store, err := NewFileStore(path, utils.NewLogger())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if got := store.Load(); len(got) != 0 {
		t.Errorf("corrupt state file should load as empty, got %v", got)
	}
}

func TestMemStoreRoundTrip(t *testing.T) {
	store := NewMemStore()
	if err := store.Save([]string{"abc"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := store.Load(); len(got) != 1 || got[0] != "abc" {
		t.Errorf("Load = %v; want [abc]", got)
	}
}
