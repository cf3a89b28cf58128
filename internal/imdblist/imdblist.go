// Package imdblist reads identifier lists exported from IMDb.
package imdblist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultColumn is the identifier column of an IMDb list export.
const DefaultColumn = "Const"

// ErrMissingColumn is returned when the header lacks the id column.
var ErrMissingColumn = errors.New("id column not found")

// Load returns the identifiers in column of the CSV file at path, in file
// order. Rows with an empty identifier are skipped.
func Load(path, column string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open id list: %w", err)
	}
	defer f.Close()

	ids, err := Read(f, column)
	if err != nil {
		return nil, fmt.Errorf("read id list %s: %w", path, err)
	}
	return ids, nil
}

// Read parses CSV from r. See Load.
func Read(r io.Reader, column string) ([]string, error) {
	if strings.TrimSpace(column) == "" {
		column = DefaultColumn
	}
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	index := -1
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if strings.EqualFold(name, column) {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, column)
	}

	var ids []string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if index >= len(record) {
			continue
		}
		if id := strings.TrimSpace(record[index]); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
