package diff

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ukaji3/exdiff-go/pkg/exdiff/models"
)

// ErrInputDataMissing is returned when either workbook model is absent.
var ErrInputDataMissing = errors.New("input data missing")

// Engine compares workbook models. It keeps no state between calls.
type Engine struct {
	equality Equality
}

// NewEngine creates an engine using the given value equality policy.
// An empty policy selects EqualityTyped.
func NewEngine(equality Equality) *Engine {
	if equality == "" {
		equality = EqualityTyped
	}
	return &Engine{equality: equality}
}

// Equality returns the policy the engine compares values with.
func (e *Engine) Equality() Equality {
	return e.equality
}

// Compare computes the sheet partition of a and b and the differing cells of
// every common sheet.
func (e *Engine) Compare(a, b *models.WorkbookData) (*models.Report, error) {
	if a == nil || b == nil {
		return nil, ErrInputDataMissing
	}
	if e.equality != EqualityTyped && e.equality != EqualityDisplay {
		return nil, fmt.Errorf("unknown equality policy %q", e.equality)
	}

	report := &models.Report{
		Partition: Partition(a, b),
		Equality:  e.equality,
		Sheets:    make(map[string][]models.Entry),
	}

	for _, name := range report.Partition.Common {
		entries := e.CompareSheet(a.Sheets[name], b.Sheets[name])
		if len(entries) > 0 {
			report.Sheets[name] = entries
		}
	}

	return report, nil
}

// CompareSheet returns the differing cells of two versions of one sheet in
// row-major order. A coordinate tracked on only one side is compared against
// the missing sentinel.
func (e *Engine) CompareSheet(a, b models.SheetData) []models.Entry {
	var entries []models.Entry

	for _, coord := range unionCoordinates(a, b) {
		sideA, sideB := side(a, coord), side(b, coord)

		valueDiffers := !ValuesEqual(e.equality, sideA, sideB)
		formulaDiffers := !FormulasEqual(sideA, sideB)
		if !valueDiffers && !formulaDiffers {
			continue
		}

		entries = append(entries, models.Entry{
			Coordinate:     coord,
			A:              sideA,
			B:              sideB,
			ValueDiffers:   valueDiffers,
			FormulaDiffers: formulaDiffers,
		})
	}

	return entries
}

// Partition splits the sheet names of a and b into only-A, only-B and common,
// each sorted lexically.
func Partition(a, b *models.WorkbookData) models.Partition {
	p := models.Partition{
		OnlyA:  []string{},
		OnlyB:  []string{},
		Common: []string{},
	}

	for _, name := range a.Names() {
		if b.Has(name) {
			p.Common = append(p.Common, name)
		} else {
			p.OnlyA = append(p.OnlyA, name)
		}
	}
	for _, name := range b.Names() {
		if !a.Has(name) {
			p.OnlyB = append(p.OnlyB, name)
		}
	}

	return p
}

func side(sheet models.SheetData, coord models.Coordinate) models.Side {
	cell, ok := sheet.Get(coord)
	if !ok {
		return models.MissingSide()
	}
	return models.PresentSide(cell)
}

func unionCoordinates(a, b models.SheetData) []models.Coordinate {
	coords := make([]models.Coordinate, 0, max(a.Len(), b.Len()))
	for c := range a.Cells {
		coords = append(coords, c)
	}
	for c := range b.Cells {
		if _, ok := a.Cells[c]; !ok {
			coords = append(coords, c)
		}
	}
	slices.SortFunc(coords, models.Compare)
	return coords
}
