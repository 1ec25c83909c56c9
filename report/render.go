package report

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Render returns the table as a fixed-width terminal table with the table
// name as title. Column order and header names match the CSV contract
// verbatim; numeric-looking alignment is left to go-pretty defaults.
func Render(t *Table) string {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	w.Style().Title.Align = text.AlignCenter
	w.Style().Format.Header = text.FormatDefault

	if t.Name != "" {
		w.SetTitle(t.Name)
	}

	header := make(table.Row, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	w.AppendHeader(header)

	for _, row := range t.Rows {
		cells := make(table.Row, len(row))
		for i, c := range row {
			cells[i] = c
		}
		w.AppendRow(cells)
	}

	return w.Render()
}
