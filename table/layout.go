// The column layout engine.  Given candidate columns and the rendered records, it decides which
// columns survive and how wide each one is, so the table fits the terminal.

package table

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
)

// A candidate column.  Key selects it, Min is the narrowest acceptable width, Rank its importance
// (lower = more important, the truncation priority order).  Width is computed by Layout, never by
// the caller.
type Col struct {
	Key    string
	Header string
	Min    int
	Rank   int
	Right  bool // right-justify (numeric-like fields)
	Fmt    func(row any) string

	Width int
}

type LayoutOpts struct {
	SepLen int  // width of the inter-column separator
	Width  int  // terminal width budget
	Fit    bool // false = "long" output at natural width
}

// Pick columns by key, in the order requested.  An empty request means the full default set.
func SelectColumns(cols []Col, keys []string) ([]Col, error) {
	if len(keys) == 0 {
		return cols, nil
	}
	selected := make([]Col, 0, len(keys))
	for _, key := range keys {
		i := slices.IndexFunc(cols, func(c Col) bool { return c.Key == key })
		if i < 0 {
			known := make([]string, len(cols))
			for j, c := range cols {
				known[j] = c.Key
			}
			return nil, fmt.Errorf("Unknown column %s, have %s", key, strings.Join(known, ","))
		}
		selected = append(selected, cols[i])
	}
	return selected, nil
}

// Render every field of every record, column-major: cells[c][r].
func Cells(cols []Col, rows []any) [][]string {
	cells := make([][]string, len(cols))
	for c := range cols {
		cells[c] = make([]string, len(rows))
		for r, row := range rows {
			cells[c][r] = cols[c].Fmt(row)
		}
	}
	return cells
}

// Compute the final column set and widths.  Columns whose every record renders blank are dropped
// unconditionally; the rest are fit to the width budget per rank order, or returned at natural
// width when fitting is off or everything already fits.  The returned columns keep their display
// order, and the returned cells correspond to them.
func Layout(cols []Col, cells [][]string, opts LayoutOpts) ([]Col, [][]string) {
	type candidate struct {
		Col
		natural int
		cells   []string
	}

	candidates := make([]candidate, 0, len(cols))
	for c, col := range cols {
		blank := len(cells[c]) > 0
		natural := runewidth.StringWidth(col.Header)
		for _, cell := range cells[c] {
			if strings.TrimSpace(cell) != "" {
				blank = false
			}
			natural = max(natural, runewidth.StringWidth(cell))
		}
		if blank {
			continue
		}
		candidates = append(candidates, candidate{col, natural, cells[c]})
	}

	assemble := func() ([]Col, [][]string) {
		outCols := make([]Col, len(candidates))
		outCells := make([][]string, len(candidates))
		for i, cand := range candidates {
			outCols[i] = cand.Col
			outCells[i] = cand.cells
		}
		return outCols, outCells
	}

	if !opts.Fit {
		for i := range candidates {
			candidates[i].Width = candidates[i].natural
		}
		return assemble()
	}

	total := 0
	for i, cand := range candidates {
		if i > 0 {
			total += opts.SepLen
		}
		total += cand.natural
	}
	if total <= opts.Width {
		for i := range candidates {
			candidates[i].Width = candidates[i].natural
		}
		return assemble()
	}

	// Doesn't fit.  First pass: walk in ascending rank order, keeping columns at their minimum
	// width while the budget lasts; a column that cannot fit even at minimum is dropped outright.
	byRank := make([]*candidate, len(candidates))
	for i := range candidates {
		byRank[i] = &candidates[i]
	}
	slices.SortStableFunc(byRank, func(a, b *candidate) int {
		return a.Rank - b.Rank
	})

	used := 0
	kept := 0
	for _, cand := range byRank {
		cost := cand.Min
		if kept > 0 {
			cost += opts.SepLen
		}
		if used+cost > opts.Width {
			cand.Width = 0 // dropped
			continue
		}
		cand.Width = cand.Min
		used += cost
		kept++
	}

	// Second pass: grow the survivors toward their natural width, most important first, until the
	// slack is gone.
	slack := opts.Width - used
	for _, cand := range byRank {
		if cand.Width == 0 || slack == 0 {
			continue
		}
		grow := min(cand.natural-cand.Width, slack)
		cand.Width += grow
		slack -= grow
	}

	candidates = slices.DeleteFunc(candidates, func(c candidate) bool {
		return c.Width == 0
	})
	return assemble()
}
