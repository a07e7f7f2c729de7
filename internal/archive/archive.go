// Package archive keeps earlier export files instead of overwriting them.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DirName is the directory, next to the export, that receives older copies.
const DirName = "archive"

// ArchiveFile moves an existing file at path into the archive directory
// beside it, suffixed with a timestamp. It returns the archived path, or ""
// when there was nothing to move.
func ArchiveFile(path string) (string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("refusing to archive directory: %s", path)
	}

	// Get parent directory and create archive path
	archiveDir := filepath.Join(filepath.Dir(path), DirName)
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)

	archivePath := filepath.Join(archiveDir, archiveName(stem, ext, "20060102-150405"))
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		archivePath = filepath.Join(archiveDir, archiveName(stem, ext, "20060102-150405.000000"))
	}

	if err := os.Rename(path, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", path, err)
	}

	return archivePath, nil
}

func archiveName(stem, ext, layout string) string {
	return fmt.Sprintf("%s-%s%s", stem, time.Now().Format(layout), ext)
}
