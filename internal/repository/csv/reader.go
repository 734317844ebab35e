// Package csv loads the rate tables from CSV files. Parsing is
// deliberately forgiving: a missing file yields an empty table and
// malformed cells degrade to zero values, so a bad row never blocks
// quoting.
package csv

import (
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// readRecords reads all rows of a CSV file, trimming cells and
// dropping blank lines. A missing file is not an error; it reads as an
// empty table.
func readRecords(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := stdcsv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	raw, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var records [][]string
	for _, row := range raw {
		blank := true
		for i, cell := range row {
			row[i] = strings.TrimSpace(cell)
			if row[i] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		records = append(records, row)
	}
	return records, nil
}
