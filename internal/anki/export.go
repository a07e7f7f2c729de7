package anki

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/flashcards/internal"
	"codeberg.org/snonux/flashcards/internal/archive"
	"codeberg.org/snonux/flashcards/internal/deck"
)

// Format selects the export file type.
type Format string

const (
	FormatAPKG Format = "apkg"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts "apkg" or "csv" in any case.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatAPKG, "":
		return FormatAPKG, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want apkg or csv)", s)
	}
}

// ExportPath resolves where set is written. When dest is an existing
// directory the file is named after the set.
func ExportPath(set *deck.Set, dest string, format Format) string {
	if info, err := os.Stat(dest); err == nil && info.IsDir() {
		return filepath.Join(dest, fmt.Sprintf("%s.%s", internal.SanitizeFilename(set.Name()), format))
	}
	return dest
}

// ExportSet writes set to dest in the given format and returns the path of
// the written file. A file already at that path is moved to the archive
// directory beside it first.
func ExportSet(set *deck.Set, dest string, format Format) (string, error) {
	if set == nil {
		return "", fmt.Errorf("export: nil set")
	}
	if set.IsEmpty() {
		return "", fmt.Errorf("export %q: set has no cards", set.Name())
	}

	if format != FormatAPKG && format != FormatCSV {
		return "", fmt.Errorf("export %q: unknown format %q", set.Name(), format)
	}

	outputPath := ExportPath(set, dest, format)
	if _, err := archive.ArchiveFile(outputPath); err != nil {
		return "", fmt.Errorf("export %q: %w", set.Name(), err)
	}

	switch format {
	case FormatCSV:
		gen := NewGenerator(&GeneratorOptions{OutputPath: outputPath, IncludeHeaders: true})
		gen.AddSet(set)
		if err := gen.GenerateCSV(); err != nil {
			return "", fmt.Errorf("export %q: %w", set.Name(), err)
		}
	case FormatAPKG:
		gen := NewGenerator(nil)
		gen.AddSet(set)
		if err := gen.GenerateAPKG(outputPath, set.Name()); err != nil {
			return "", fmt.Errorf("export %q: %w", set.Name(), err)
		}
	}

	return outputPath, nil
}

// ExportSetToDir writes set into dir, creating dir when missing, and returns
// the path of the written file.
func ExportSetToDir(set *deck.Set, dir string, format Format) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	return ExportSet(set, dir, format)
}

// ExportSets writes each set into dir, one file per set. Sets whose names
// map to the same file name get a numeric suffix ("Biology-2.csv"), so no
// export of this call replaces another. Files left from earlier runs are
// archived as usual.
func ExportSets(sets []*deck.Set, dir string, format Format) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	used := make(map[string]bool, len(sets))
	paths := make([]string, 0, len(sets))
	for _, set := range sets {
		if set == nil {
			return paths, fmt.Errorf("export: nil set")
		}
		path := uniquePath(ExportPath(set, dir, format), used)
		used[path] = true

		written, err := ExportSet(set, path, format)
		if err != nil {
			return paths, err
		}
		paths = append(paths, written)
	}
	return paths, nil
}

func uniquePath(path string, used map[string]bool) string {
	if !used[path] {
		return path
	}
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, n, ext)
		if !used[candidate] {
			return candidate
		}
	}
}
