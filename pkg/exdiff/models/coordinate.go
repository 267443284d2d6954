package models

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ErrMalformedCoordinate indicates a cell reference that is not a plain
// column-letters + row-digits address such as "A1".
var ErrMalformedCoordinate = errors.New("malformed coordinate")

// Coordinate is a cell address. Both fields are 1-based. It encodes to JSON
// as its cell name.
type Coordinate struct {
	// Row is the row number (1-based).
	Row int
	// Col is the column number (1-based, A = 1).
	Col int
}

// NewCoordinate returns the coordinate for row and col after checking both are
// inside the worksheet bounds.
func NewCoordinate(row, col int) (Coordinate, error) {
	if row < 1 || row > excelize.TotalRows || col < 1 || col > excelize.MaxColumns {
		return Coordinate{}, fmt.Errorf("%w: row %d, column %d out of range", ErrMalformedCoordinate, row, col)
	}
	return Coordinate{Row: row, Col: col}, nil
}

// ParseCoordinate decodes a canonical cell name ("A1", "XFD1048576").
// Absolute markers, ranges and sheet prefixes are rejected.
func ParseCoordinate(text string) (Coordinate, error) {
	split := 0
	for split < len(text) && isLetter(text[split]) {
		split++
	}
	letters, digits := text[:split], text[split:]

	if letters == "" {
		return Coordinate{}, fmt.Errorf("%w: %q has no column letters", ErrMalformedCoordinate, text)
	}
	if digits == "" {
		return Coordinate{}, fmt.Errorf("%w: %q has no row digits", ErrMalformedCoordinate, text)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Coordinate{}, fmt.Errorf("%w: %q has a non-digit row segment", ErrMalformedCoordinate, text)
		}
	}
	if digits[0] == '0' {
		return Coordinate{}, fmt.Errorf("%w: %q has a zero-prefixed row", ErrMalformedCoordinate, text)
	}

	row, err := strconv.Atoi(digits)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q: %v", ErrMalformedCoordinate, text, err)
	}
	col, err := excelize.ColumnNameToNumber(letters)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q: %v", ErrMalformedCoordinate, text, err)
	}

	return NewCoordinate(row, col)
}

// MustParseCoordinate is like ParseCoordinate but panics on error.
// Intended for literals in tests and fixtures.
func MustParseCoordinate(text string) Coordinate {
	c, err := ParseCoordinate(text)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the canonical cell name, or "" for an invalid coordinate.
func (c Coordinate) String() string {
	name, err := excelize.CoordinatesToCellName(c.Col, c.Row)
	if err != nil {
		return ""
	}
	return name
}

// Compare orders coordinates row-major: lower row first, then lower column.
func Compare(a, b Coordinate) int {
	if r := cmp.Compare(a.Row, b.Row); r != 0 {
		return r
	}
	return cmp.Compare(a.Col, b.Col)
}

// Less reports whether c sorts before other.
func (c Coordinate) Less(other Coordinate) bool {
	return Compare(c, other) < 0
}

// MarshalText encodes the coordinate as its cell name so it can key JSON maps.
func (c Coordinate) MarshalText() ([]byte, error) {
	name := c.String()
	if name == "" {
		return nil, fmt.Errorf("%w: row %d, column %d", ErrMalformedCoordinate, c.Row, c.Col)
	}
	return []byte(name), nil
}

// UnmarshalText decodes a cell name.
func (c *Coordinate) UnmarshalText(text []byte) error {
	parsed, err := ParseCoordinate(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
