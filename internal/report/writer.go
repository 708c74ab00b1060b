// Package report serializes run output: the JSON report file and the
// stdout summary tables.
package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bcgov/gh-org-report/internal/models"
)

// Write writes the report array to path as one pretty-printed JSON
// document. An empty run produces "[]", never null. The write is
// atomic: a temp file is written, synced, and renamed over the target,
// so a crash mid-write never leaves a truncated report. Output is
// byte-identical across runs on identical input.
func Write(path string, reports []models.RepositoryReport) (err error) {
	if reports == nil {
		reports = []models.RepositoryReport{}
	}

	tmpPath := path + ".tmp"
	file, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tmpPath, err)
	}
	defer func() {
		if err != nil {
			_ = file.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(reports); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err = file.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", tmpPath, err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming report into place: %w", err)
	}
	return nil
}
