package worklist

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const outputSheet = "Sheet1"

// ReadXLSX parses the first sheet of a workbook.
func ReadXLSX(r io.Reader, cols Columns) (*List, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%w: %s (workbook has no sheets)", ErrMissingColumn, cols.ID)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return fromRows(rows, cols)
}

// WriteXLSX writes the output table to a single-sheet workbook. Metric
// cells are numeric.
func WriteXLSX(w io.Writer, header []string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	out := OutputHeader(header)
	cells := make([]interface{}, len(out))
	for i, h := range out {
		cells[i] = h
	}
	if err := f.SetSheetRow(outputSheet, "A1", &cells); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(outputSheet, 1, 1, bold); err != nil {
		return err
	}

	for i, row := range rows {
		cells := make([]interface{}, 0, len(out))
		for _, cell := range padded(row.Item, len(header)) {
			cells = append(cells, cell)
		}
		for _, v := range row.Record.Values() {
			cells = append(cells, v)
		}
		cells = append(cells, errorText(row.Err))

		ref, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(outputSheet, ref, &cells); err != nil {
			return err
		}
	}

	return f.Write(w)
}
