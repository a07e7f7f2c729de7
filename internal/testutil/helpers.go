// Package testutil holds fixtures and file assertions shared by tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/flashcards/internal/deck"
)

// Pair is a term/definition fixture.
type Pair = [2]string

// NewTestSet builds a set named name holding one card per pair.
func NewTestSet(t *testing.T, name string, pairs ...Pair) *deck.Set {
	t.Helper()

	set, err := deck.NewSet(name)
	if err != nil {
		t.Fatalf("Failed to create set %q: %v", name, err)
	}
	for _, p := range pairs {
		card, err := deck.NewFlashcard(p[0], p[1])
		if err != nil {
			t.Fatalf("Failed to create card %q: %v", p[0], err)
		}
		set.AppendCard(card)
	}
	return set
}

// NewTestStore returns a store holding sets in the given order.
func NewTestStore(t *testing.T, sets ...*deck.Set) *deck.Store {
	t.Helper()

	store := deck.NewStore()
	for _, set := range sets {
		if err := store.Add(set); err != nil {
			t.Fatalf("Failed to add set %q: %v", set.Name(), err)
		}
	}
	return store
}

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// WriteTempFile writes content to name inside a fresh temporary directory
// and returns the full path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	CreateTestFile(t, path, []byte(content))
	return path
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContent checks if a file has expected content
func AssertFileContent(t *testing.T, path string, expected []byte) {
	t.Helper()

	actual, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if string(actual) != string(expected) {
		t.Errorf("File content mismatch in %s\nExpected: %q\nActual: %q", path, expected, actual)
	}
}

// AssertFileContains checks if a file contains a substring
func AssertFileContains(t *testing.T, path string, substring string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !strings.Contains(string(content), substring) {
		t.Errorf("File %s does not contain expected substring: %q", path, substring)
	}
}
