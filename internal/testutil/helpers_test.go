package testutil

import (
	"path/filepath"
	"testing"
)

func TestNewTestStore(t *testing.T) {
	biology := NewTestSet(t, "Biology", Pair{"Mitochondria", "Powerhouse of the cell"})
	empty := NewTestSet(t, "Empty")

	store := NewTestStore(t, biology, empty)

	if store.Len() != 2 {
		t.Fatalf("Expected 2 sets, got %d", store.Len())
	}
	if first, _ := store.At(0); first != biology {
		t.Error("Expected sets in insertion order")
	}
	if biology.Len() != 1 || !empty.IsEmpty() {
		t.Errorf("Unexpected card counts %d and %d", biology.Len(), empty.Len())
	}
}

func TestWriteTempFile(t *testing.T) {
	path := WriteTempFile(t, "cards.txt", "uno = one\n")

	if filepath.Base(path) != "cards.txt" {
		t.Errorf("Unexpected file name: %s", path)
	}
	AssertFileExists(t, path)
	AssertFileContent(t, path, []byte("uno = one\n"))
	AssertFileContains(t, path, "uno")
	AssertFileNotExists(t, filepath.Join(filepath.Dir(path), "missing.txt"))
}
