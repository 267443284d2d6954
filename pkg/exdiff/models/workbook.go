package models

import (
	"fmt"
	"slices"
)

// WarningKind classifies a non-fatal issue found while reading a workbook.
type WarningKind string

// WarningSheetViewMismatch marks a sheet present in the formula lens but absent
// from the value lens. Such sheets are skipped.
const WarningSheetViewMismatch WarningKind = "sheet_view_mismatch"

// Warning is a non-fatal, per-sheet issue recorded during a read.
type Warning struct {
	Sheet   string      `json:"sheet"`
	Kind    WarningKind `json:"kind"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: sheet %q: %s", w.Kind, w.Sheet, w.Message)
}

// WorkbookData represents workbook-level container with per-sheet data.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetOrder is the sheet sequence declared by the formula lens, minus
	// skipped sheets.
	SheetOrder []string `json:"sheet_order"`
	// Sheets maps sheet name to SheetData.
	Sheets map[string]SheetData `json:"sheets"`
	// Warnings lists non-fatal issues found while reading.
	Warnings []Warning `json:"warnings,omitempty"`
}

// NewWorkbookData returns an empty workbook model.
func NewWorkbookData(bookName string) *WorkbookData {
	return &WorkbookData{
		BookName:   bookName,
		SheetOrder: []string{},
		Sheets:     make(map[string]SheetData),
	}
}

// AddSheet appends a sheet in declaration order. Re-adding a name replaces its
// data without changing the order.
func (w *WorkbookData) AddSheet(name string, data SheetData) {
	if _, ok := w.Sheets[name]; !ok {
		w.SheetOrder = append(w.SheetOrder, name)
	}
	w.Sheets[name] = data
}

// Has reports whether the workbook contains a sheet named name.
func (w *WorkbookData) Has(name string) bool {
	_, ok := w.Sheets[name]
	return ok
}

// Names returns the sheet names in lexical order.
func (w *WorkbookData) Names() []string {
	names := make([]string, 0, len(w.Sheets))
	for name := range w.Sheets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
