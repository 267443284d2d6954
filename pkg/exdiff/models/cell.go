// Package models defines data structures for workbook extraction and diffing.
package models

// FormulaSigil is the leading character that marks cell content as a formula.
const FormulaSigil = "="

// Cell is the merged state of one cell as seen through the formula and the
// value lenses of a workbook.
type Cell struct {
	// Value is the cached evaluated value.
	Value Value `json:"value"`
	// Formula is the formula text including the leading "=", or "" when the
	// cell holds a literal.
	Formula string `json:"formula"`
}

// IsBlank reports whether the cell has neither a value nor a formula.
func (c Cell) IsBlank() bool {
	return c.Value.IsEmpty() && c.Formula == ""
}
