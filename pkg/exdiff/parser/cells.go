package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/exdiff-go/pkg/exdiff/models"
)

// MergeCell combines what the formula lens stores at a coordinate with what
// the value lens caches there. raw only counts as a formula when it starts
// with "=".
func MergeCell(raw string, value models.Value) models.Cell {
	formula := ""
	if strings.HasPrefix(raw, models.FormulaSigil) {
		formula = raw
	}
	return models.Cell{Value: value, Formula: formula}
}

// ExtractCells reads every coordinate of the sheet's declared rectangle from
// both lenses and merges them. In sparse mode coordinates with no value and
// no formula are not stored.
func ExtractCells(views *Views, sheetName string, sparse bool) (models.SheetData, error) {
	data := models.NewSheetData()

	ref, err := views.Formula.Dimension(sheetName)
	if err != nil {
		return data, fmt.Errorf("dimension: %w", err)
	}
	rect, ok, err := ParseDimension(ref)
	if err != nil {
		return data, err
	}
	if !ok {
		return data, nil
	}

	for row := rect.R1; row <= rect.R2; row++ {
		for col := rect.C1; col <= rect.C2; col++ {
			coord := models.Coordinate{Row: row, Col: col}
			cellName := coord.String()

			raw, err := views.Formula.RawContent(sheetName, cellName)
			if err != nil {
				return data, fmt.Errorf("formula view %s: %w", cellName, err)
			}
			value, err := views.Value.CachedValue(sheetName, cellName)
			if err != nil {
				return data, fmt.Errorf("value view %s: %w", cellName, err)
			}

			cell := MergeCell(raw, value)
			if sparse && cell.IsBlank() {
				continue
			}
			data.Cells[coord] = cell
		}
	}

	return data, nil
}

// parseValue parses a raw cached literal.
// Integers and decimals become numbers; anything else stays text.
func parseValue(s string) models.Value {
	if v, ok := models.ParseNumber(s); ok {
		return v
	}
	return models.String(s)
}
