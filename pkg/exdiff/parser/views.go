package parser

import (
	"errors"
	"io"

	"github.com/ukaji3/exdiff-go/pkg/exdiff/models"
)

// FormulaView is the formula-preserving lens of a workbook. It reports what is
// literally stored in each cell: the formula text for formula cells, the raw
// literal otherwise.
type FormulaView interface {
	// SheetList returns the sheet names in workbook order.
	SheetList() []string
	// Dimension returns the declared used range of a sheet ("A1:D10"),
	// or "" when the sheet has no cells.
	Dimension(sheet string) (string, error)
	// RawContent returns the stored content of a cell. Formula cells are
	// returned with a leading "=".
	RawContent(sheet, cell string) (string, error)
}

// ValueView is the evaluated lens of a workbook. It reports the cached result
// stored for each cell and never recalculates.
type ValueView interface {
	// SheetList returns the sheet names in workbook order.
	SheetList() []string
	// CachedValue returns the cached value of a cell, or models.Empty().
	CachedValue(sheet, cell string) (models.Value, error)
}

// Views holds both lenses of one workbook together with the handles that
// back them.
type Views struct {
	Formula FormulaView
	Value   ValueView
	closers []io.Closer
}

// NewViews bundles two lenses. closers are released by Close in order.
func NewViews(formula FormulaView, value ValueView, closers ...io.Closer) *Views {
	return &Views{Formula: formula, Value: value, closers: closers}
}

// Close releases every handle, even when an earlier one fails.
func (v *Views) Close() error {
	var errs []error
	for _, c := range v.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	v.closers = nil
	return errors.Join(errs...)
}

// Opener acquires both lenses of the workbook at path.
type Opener func(path string) (*Views, error)
