package models

import (
	"slices"
)

// Equality names the rule used to decide whether two cell values match.
type Equality string

const (
	// EqualityTyped requires the same tag and payload. Integer 10 and float
	// 10.0 differ.
	EqualityTyped Equality = "typed"
	// EqualityDisplay compares the rendered text of both values. Integer 10,
	// float 10.0 and the string "10" all match.
	EqualityDisplay Equality = "display"
)

// Partition splits the sheet names of two workbooks.
// Every slice is sorted and non-nil.
type Partition struct {
	// OnlyA lists sheets present only in workbook A.
	OnlyA []string `json:"only_a"`
	// OnlyB lists sheets present only in workbook B.
	OnlyB []string `json:"only_b"`
	// Common lists sheets present in both workbooks.
	Common []string `json:"common"`
}

// Side is one half of a diff entry. A missing side stands in for a coordinate
// that the workbook does not track at all, which is not the same thing as a
// tracked blank cell.
type Side struct {
	Cell
	// Missing is true when the workbook has no record at the coordinate.
	Missing bool `json:"missing,omitempty"`
}

// PresentSide wraps a real cell record.
func PresentSide(c Cell) Side {
	return Side{Cell: c}
}

// MissingSide returns the sentinel for an absent coordinate.
func MissingSide() Side {
	return Side{Missing: true}
}

// Entry describes one differing cell.
type Entry struct {
	// Coordinate is the cell address.
	Coordinate Coordinate `json:"cell"`
	// A is the cell in workbook A.
	A Side `json:"a"`
	// B is the cell in workbook B.
	B Side `json:"b"`
	// ValueDiffers is true when the values fail the equality policy.
	ValueDiffers bool `json:"value_differs"`
	// FormulaDiffers is true when the formula texts differ.
	FormulaDiffers bool `json:"formula_differs"`
}

// Report is the result of comparing two workbooks.
type Report struct {
	// Partition is the sheet-level comparison. Always present.
	Partition Partition `json:"partition"`
	// Equality is the value equality policy the report was computed with.
	Equality Equality `json:"equality"`
	// Sheets maps each common sheet with at least one differing cell to its
	// entries in row-major order.
	Sheets map[string][]Entry `json:"sheets"`
}

// SheetNames returns the sheets with differences in lexical order.
func (r *Report) SheetNames() []string {
	names := make([]string, 0, len(r.Sheets))
	for name := range r.Sheets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// HasDifferences reports whether the workbooks differ at sheet or cell level.
func (r *Report) HasDifferences() bool {
	return len(r.Partition.OnlyA) > 0 || len(r.Partition.OnlyB) > 0 || len(r.Sheets) > 0
}

// EntryCount returns the total number of differing cells.
func (r *Report) EntryCount() int {
	n := 0
	for _, entries := range r.Sheets {
		n += len(entries)
	}
	return n
}

// Find returns the entry for sheet at c.
func (r *Report) Find(sheet string, c Coordinate) (Entry, bool) {
	entries := r.Sheets[sheet]
	i, ok := slices.BinarySearchFunc(entries, c, func(e Entry, target Coordinate) int {
		return Compare(e.Coordinate, target)
	})
	if !ok {
		return Entry{}, false
	}
	return entries[i], true
}
