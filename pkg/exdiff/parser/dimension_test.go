package parser

import (
	"errors"
	"testing"

	"github.com/ukaji3/exdiff-go/pkg/exdiff/models"
)

func TestParseDimension(t *testing.T) {
	tests := []struct {
		ref      string
		expected models.Rect
		ok       bool
	}{
		{"A1:D10", models.Rect{R1: 1, C1: 1, R2: 10, C2: 4}, true},
		{"$A$1:$D$10", models.Rect{R1: 1, C1: 1, R2: 10, C2: 4}, true},
		{"B3:F6", models.Rect{R1: 1, C1: 1, R2: 6, C2: 6}, true},
		{"D10:B3", models.Rect{R1: 1, C1: 1, R2: 10, C2: 4}, true},
		{"A1", models.Rect{R1: 1, C1: 1, R2: 1, C2: 1}, true},
		{"", models.Rect{}, false},
		{"  ", models.Rect{}, false},
	}

	for _, tt := range tests {
		rect, ok, err := ParseDimension(tt.ref)
		if err != nil {
			t.Errorf("ParseDimension(%q) returned error: %v", tt.ref, err)
			continue
		}
		if ok != tt.ok || rect != tt.expected {
			t.Errorf("ParseDimension(%q) = %+v, %v, expected %+v, %v", tt.ref, rect, ok, tt.expected, tt.ok)
		}
	}
}

func TestParseDimensionMalformed(t *testing.T) {
	for _, ref := range []string{"A1:B2:C3", "1A:B2", "A1:", "Sheet1!A1:B2"} {
		_, _, err := ParseDimension(ref)
		if !errors.Is(err, models.ErrMalformedCoordinate) {
			t.Errorf("ParseDimension(%q) error = %v, expected ErrMalformedCoordinate", ref, err)
		}
	}
}
