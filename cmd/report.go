package cmd

import (
	"io"

	"github.com/tdegeus/mate-cluster/table"
)

// Lay out and print one report table: render the cells, fit the columns to the width budget, and
// write the result.  All three verbs funnel through here so the tables look the same.
func PrintReport(
	out io.Writer,
	cols []table.Col,
	rows []any,
	fmtArgs *FormatArgs,
	scheme *table.Scheme,
	rowClass func(row any) table.Class,
	cellClass func(row any, key string) table.Class,
) {
	cells := table.Cells(cols, rows)
	width := fmtArgs.Width
	if width == 0 {
		width = table.TerminalWidth(out)
	}
	cols, cells = table.Layout(cols, cells, table.LayoutOpts{
		SepLen: len(fmtArgs.Separator),
		Width:  width,
		Fit:    !fmtArgs.Long,
	})
	table.Render(out, cols, cells, rows, table.RenderOpts{
		Sep:       fmtArgs.Separator,
		Ellipsis:  fmtArgs.Ellipsis,
		Rule:      "-",
		Scheme:    scheme,
		RowClass:  rowClass,
		CellClass: cellClass,
	})
}
