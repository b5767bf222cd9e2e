package cmd

import (
	"slices"
)

// Stable sort for the -sort flag.  Records that have no value for the sort key stay at their
// original positions; only the records that do have one are ordered, among themselves.  A nil
// present predicate means the key always has a value.
func SortRows[T any](rows []T, present func(T) bool, compare func(a, b T) int) {
	if present == nil {
		slices.SortStableFunc(rows, compare)
		return
	}
	positions := make([]int, 0, len(rows))
	sorted := make([]T, 0, len(rows))
	for i, row := range rows {
		if present(row) {
			positions = append(positions, i)
			sorted = append(sorted, row)
		}
	}
	slices.SortStableFunc(sorted, compare)
	for k, i := range positions {
		rows[i] = sorted[k]
	}
}
