package models

import (
	"errors"
	"slices"
	"testing"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		input    string
		expected Coordinate
	}{
		{"A1", Coordinate{Row: 1, Col: 1}},
		{"D2", Coordinate{Row: 2, Col: 4}},
		{"Z9", Coordinate{Row: 9, Col: 26}},
		{"AA10", Coordinate{Row: 10, Col: 27}},
		{"XFD1048576", Coordinate{Row: 1048576, Col: 16384}},
		{"f6", Coordinate{Row: 6, Col: 6}},
	}

	for _, tt := range tests {
		result, err := ParseCoordinate(tt.input)
		if err != nil {
			t.Errorf("ParseCoordinate(%q) returned error: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseCoordinate(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}
}

func TestParseCoordinateMalformed(t *testing.T) {
	inputs := []string{
		"",
		"A",
		"1",
		"12A",
		"A1B",
		"A-1",
		"A0",
		"A01",
		"$A$1",
		"A1:B2",
		"Sheet1!A1",
		" A1",
		"XFE1",
		"A1048577",
		"Ä1",
	}

	for _, input := range inputs {
		_, err := ParseCoordinate(input)
		if err == nil {
			t.Errorf("ParseCoordinate(%q) expected error", input)
			continue
		}
		if !errors.Is(err, ErrMalformedCoordinate) {
			t.Errorf("ParseCoordinate(%q) error %v does not wrap ErrMalformedCoordinate", input, err)
		}
	}
}

func TestCoordinateString(t *testing.T) {
	tests := []struct {
		coord    Coordinate
		expected string
	}{
		{Coordinate{Row: 1, Col: 1}, "A1"},
		{Coordinate{Row: 6, Col: 6}, "F6"},
		{Coordinate{Row: 10, Col: 28}, "AB10"},
		{Coordinate{}, ""},
	}

	for _, tt := range tests {
		if got := tt.coord.String(); got != tt.expected {
			t.Errorf("%+v.String() = %q, expected %q", tt.coord, got, tt.expected)
		}
	}
}

func TestCoordinateRoundTrip(t *testing.T) {
	for _, name := range []string{"A1", "B2", "Z26", "AA1", "AZ100", "XFD1048576"} {
		c := MustParseCoordinate(name)
		if c.String() != name {
			t.Errorf("round trip of %q produced %q", name, c.String())
		}
	}
}

func TestCompareIsRowMajor(t *testing.T) {
	// Lexical order would put A10 before A2 and B1 after A10.
	names := []string{"A10", "B1", "A2", "C1", "A1", "B2"}
	coords := make([]Coordinate, len(names))
	for i, name := range names {
		coords[i] = MustParseCoordinate(name)
	}

	slices.SortFunc(coords, Compare)

	got := make([]string, len(coords))
	for i, c := range coords {
		got[i] = c.String()
	}
	expected := []string{"A1", "B1", "C1", "A2", "B2", "A10"}
	if !slices.Equal(got, expected) {
		t.Errorf("sorted = %v, expected %v", got, expected)
	}

	if !MustParseCoordinate("Z1").Less(MustParseCoordinate("A2")) {
		t.Error("Z1 should sort before A2")
	}
	if Compare(MustParseCoordinate("C3"), MustParseCoordinate("C3")) != 0 {
		t.Error("equal coordinates should compare as 0")
	}
}

func TestNewCoordinateBounds(t *testing.T) {
	if _, err := NewCoordinate(0, 1); !errors.Is(err, ErrMalformedCoordinate) {
		t.Errorf("NewCoordinate(0, 1) error = %v", err)
	}
	if _, err := NewCoordinate(1, 0); !errors.Is(err, ErrMalformedCoordinate) {
		t.Errorf("NewCoordinate(1, 0) error = %v", err)
	}
	if c, err := NewCoordinate(3, 2); err != nil || c.String() != "B3" {
		t.Errorf("NewCoordinate(3, 2) = %v, %v", c, err)
	}
}
