package models

import (
	"bytes"
	"encoding/json"
	"slices"
)

// SheetData holds the cells read from a single sheet.
// A non-nil empty Cells map means the sheet exists but has no tracked cells.
type SheetData struct {
	// Cells maps coordinates to merged cell records.
	Cells map[Coordinate]Cell `json:"cells"`
}

// NewSheetData returns an empty sheet.
func NewSheetData() SheetData {
	return SheetData{Cells: make(map[Coordinate]Cell)}
}

// Len returns the number of tracked cells.
func (s SheetData) Len() int {
	return len(s.Cells)
}

// Get returns the cell at c.
func (s SheetData) Get(c Coordinate) (Cell, bool) {
	cell, ok := s.Cells[c]
	return cell, ok
}

// Coordinates returns the tracked coordinates in row-major order.
func (s SheetData) Coordinates() []Coordinate {
	coords := make([]Coordinate, 0, len(s.Cells))
	for c := range s.Cells {
		coords = append(coords, c)
	}
	slices.SortFunc(coords, Compare)
	return coords
}

// MarshalJSON writes the cells keyed by coordinate text in row-major order,
// so "A2" precedes "A10".
func (s SheetData) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"cells":{`)
	for i, c := range s.Coordinates() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.String())
		if err != nil {
			return nil, err
		}
		cell, err := json.Marshal(s.Cells[c])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(cell)
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}
