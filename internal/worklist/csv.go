package worklist

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV parses a comma-separated work list with a header row.
func ReadCSV(r io.Reader, cols Columns) (*List, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = trimBOM(rows[0][0])
	}
	return fromRows(rows, cols)
}

// WriteCSV writes the output table as CSV.
func WriteCSV(w io.Writer, header []string, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(OutputHeader(header)); err != nil {
		return err
	}

	for _, row := range rows {
		record := padded(row.Item, len(header))
		for _, v := range row.Record.Values() {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}
		record = append(record, errorText(row.Err))
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func trimBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
