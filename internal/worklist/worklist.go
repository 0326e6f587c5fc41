// Package worklist reads the list of articles to analyze and writes the
// results back as a table: every input column followed by the metrics.
package worklist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pthm/artmetrics/internal/textmetrics"
)

var (
	// ErrMissingColumn is returned when the header lacks the ID or URL column.
	ErrMissingColumn = errors.New("missing column")
	// ErrUnsupportedFormat is returned for files that are neither .xlsx nor .csv.
	ErrUnsupportedFormat = errors.New("unsupported work list format")
)

// ErrorColumn is the last output column, empty for rows that succeeded.
const ErrorColumn = "Error"

// Columns names the header cells holding the article id and URL.
type Columns struct {
	ID  string
	URL string
}

// DefaultColumns matches the Input.xlsx layout.
var DefaultColumns = Columns{ID: "URL_ID", URL: "URL"}

// Item is one article to process.
type Item struct {
	ID  string
	URL string
	// Row holds every input cell, aligned with List.Header.
	Row []string
}

// List is a parsed work list.
type List struct {
	Header []string
	Items  []Item
}

// Row is one output line: an item with its metrics or the error that
// stopped its processing.
type Row struct {
	Item   Item
	Record textmetrics.Record
	Err    error
}

// Read loads a work list, choosing the format by extension.
func Read(path string, cols Columns) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext(path) {
	case ".xlsx":
		return ReadXLSX(f, cols)
	case ".csv":
		return ReadCSV(f, cols)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Write saves rows under header followed by the metric and Error columns.
func Write(path string, header []string, rows []Row) error {
	switch ext(path) {
	case ".xlsx", ".csv":
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if ext(path) == ".xlsx" {
		err = WriteXLSX(f, header, rows)
	} else {
		err = WriteCSV(f, header, rows)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// OutputHeader returns the full output header for an input header.
func OutputHeader(header []string) []string {
	out := make([]string, 0, len(header)+len(textmetrics.Keys)+1)
	out = append(out, header...)
	out = append(out, textmetrics.Keys...)
	return append(out, ErrorColumn)
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// fromRows maps raw table rows (header first) to a List.
func fromRows(rows [][]string, cols Columns) (*List, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s (empty table)", ErrMissingColumn, cols.ID)
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = strings.TrimSpace(cell)
	}

	idCol := indexOf(header, cols.ID)
	if idCol < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, cols.ID)
	}
	urlCol := indexOf(header, cols.URL)
	if urlCol < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, cols.URL)
	}

	list := &List{Header: header}
	for _, raw := range rows[1:] {
		if blank(raw) {
			continue
		}
		row := make([]string, len(header))
		copy(row, raw)
		list.Items = append(list.Items, Item{
			ID:  strings.TrimSpace(row[idCol]),
			URL: strings.TrimSpace(row[urlCol]),
			Row: row,
		})
	}
	return list, nil
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(h, name) {
			return i
		}
	}
	return -1
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// errorText is the Error cell for a row.
func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// padded returns the item's cells stretched or cut to n columns.
func padded(item Item, n int) []string {
	row := make([]string, n)
	copy(row, item.Row)
	return row
}
