// Package input parses the CSV files supplied alongside a run: the
// removed-members list and the linked-members identity dataset.
package input

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bcgov/gh-org-report/internal/models"
)

// ReadLoginSet reads the first column of a CSV file into a normalized
// login set. The file may carry a UTF-8 BOM and an optional "login"
// header row; rows beyond the first column are ignored.
func ReadLoginSet(path string) (map[string]struct{}, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	set, err := parseLoginSet(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return set, nil
}

func parseLoginSet(r io.Reader) (map[string]struct{}, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	set := make(map[string]struct{})
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) == 0 {
			continue
		}
		login := record[0]
		if first {
			login = strings.TrimPrefix(login, "\uFEFF")
			first = false
			if strings.EqualFold(login, "login") {
				continue
			}
		}
		login = strings.TrimSpace(login)
		if login == "" {
			continue
		}
		set[models.LoginKey(login)] = struct{}{}
	}
	return set, nil
}
