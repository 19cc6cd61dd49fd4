package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveExports moves the exports directory into a sibling archive
// directory, named exports-YYYYMMDD-HHMMSS, and returns the new path.
func ArchiveExports(exportsDir string) (string, error) {
	if _, err := os.Stat(exportsDir); os.IsNotExist(err) {
		return "", fmt.Errorf("exports directory does not exist: %s", exportsDir)
	}

	archiveDir := filepath.Join(filepath.Dir(exportsDir), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	now := time.Now()
	archivePath := filepath.Join(archiveDir, "exports-"+now.Format("20060102-150405"))

	// two archives within the same second
	if _, err := os.Stat(archivePath); err == nil {
		archivePath = filepath.Join(archiveDir, "exports-"+now.Format("20060102-150405.000000"))
	}

	if err := os.Rename(exportsDir, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive exports directory: %w", err)
	}
	return archivePath, nil
}
