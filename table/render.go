// The table renderer: one header line, one dash rule, one line per record, using the widths the
// layout engine resolved.  All width bookkeeping happens on the plain text; color is wrapped
// around the padded cells afterwards.

package table

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type RenderOpts struct {
	Sep      string // inter-column separator
	Ellipsis string // marks truncated cells
	Rule     string // symbol the header rule is made of; "" suppresses the rule
	Scheme   *Scheme

	// Optional style predicates; RowClass styles a whole record line, CellClass overrides it for
	// one field.  Either may be nil.
	RowClass  func(row any) Class
	CellClass func(row any, key string) Class
}

// Render the laid-out table.  An empty column set prints nothing at all.
func Render(out io.Writer, cols []Col, cells [][]string, rows []any, opts RenderOpts) {
	if len(cols) == 0 {
		return
	}
	w := bufio.NewWriter(out)
	defer w.Flush()

	var line strings.Builder

	// Header and rule.  Headers are always left-justified.
	line.Reset()
	for c, col := range cols {
		if c > 0 {
			line.WriteString(opts.Sep)
		}
		last := c == len(cols)-1
		line.WriteString(fitCell(col.Header, col.Width, false, last, opts.Ellipsis))
	}
	fmt.Fprintln(w, line.String())

	if opts.Rule != "" {
		line.Reset()
		for c, col := range cols {
			if c > 0 {
				line.WriteString(opts.Sep)
			}
			line.WriteString(strings.Repeat(opts.Rule, col.Width))
		}
		fmt.Fprintln(w, line.String())
	}

	for r, row := range rows {
		rowClass := ClassNone
		if opts.RowClass != nil {
			rowClass = opts.RowClass(row)
		}
		line.Reset()
		for c, col := range cols {
			if c > 0 {
				line.WriteString(opts.Sep)
			}
			class := rowClass
			if opts.CellClass != nil {
				if cc := opts.CellClass(row, col.Key); cc != ClassNone {
					class = cc
				}
			}
			last := c == len(cols)-1
			cell := fitCell(cells[c][r], col.Width, col.Right, last, opts.Ellipsis)
			line.WriteString(opts.Scheme.Paint(class, cell))
		}
		fmt.Fprintln(w, line.String())
	}
}

// Truncate an overlong cell to the column width, marking the cut with the ellipsis when it fits,
// and pad to width.  The trailing pad of the last column is omitted to keep lines clean.
func fitCell(text string, width int, right, last bool, ellipsis string) string {
	if runewidth.StringWidth(text) > width {
		if runewidth.StringWidth(ellipsis) >= width {
			ellipsis = ""
		}
		text = runewidth.Truncate(text, width, ellipsis)
	}
	if right {
		return runewidth.FillLeft(text, width)
	}
	if last {
		return text
	}
	return runewidth.FillRight(text, width)
}
