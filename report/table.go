// Package report holds the flat result table produced by every analyzer
// and its output surfaces: CSV export and terminal rendering.
//
// A Table is produced fresh per run, consumed immediately, and discarded.
// Undefined numeric results are carried as the literal cell "NaN" so a
// single undefined value never aborts an export.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Table is a flat, ordered result table. Column order is part of each
// analyzer's contract and is preserved verbatim by every output surface.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// New creates an empty table with the given name and column order.
func New(name string, columns ...string) *Table {
	return &Table{Name: name, Columns: columns}
}

// AddRow appends a data row. The caller must pass exactly one value per
// column.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// NumericColumn extracts the named column as float64 values. Cells holding
// "NaN" parse as NaN. A missing column or a cell that is not numeric is an
// error; callers decide how to surface it.
func (t *Table) NumericColumn(name string) ([]float64, error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("no column %q in table %s", name, t.Name)
	}
	out := make([]float64, 0, len(t.Rows))
	for i, row := range t.Rows {
		v, err := strconv.ParseFloat(row[idx], 64)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %q is not numeric", name, i, row[idx])
		}
		out = append(out, v)
	}
	return out, nil
}

// WriteCSV writes the header row followed by all data rows.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatFloat renders a float cell. NaN renders as "NaN", the explicit
// undefined marker.
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatPrice renders a currency cell with two decimals, "NaN" when
// undefined.
func FormatPrice(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatInt renders an integer cell.
func FormatInt(v int) string { return strconv.Itoa(v) }

// FormatBool renders a boolean cell as "true"/"false".
func FormatBool(v bool) string { return strconv.FormatBool(v) }
