package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/exdiff-go/pkg/exdiff/models"
)

// ParseDimension converts a declared sheet dimension into the iteration
// rectangle. The rectangle always starts at A1 and ends at the furthest row
// and column the reference mentions.
//
// Accepted forms: "A1:D10", "$A$1:$D$10", "D10" and "". An empty reference
// returns ok=false, meaning the sheet has no cells to read.
func ParseDimension(ref string) (rect models.Rect, ok bool, err error) {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	if ref == "" {
		return models.Rect{}, false, nil
	}

	parts := strings.Split(ref, ":")
	if len(parts) > 2 {
		return models.Rect{}, false, fmt.Errorf("dimension %q: %w", ref, models.ErrMalformedCoordinate)
	}

	rect = models.Rect{R1: 1, C1: 1}
	for _, part := range parts {
		c, err := models.ParseCoordinate(part)
		if err != nil {
			return models.Rect{}, false, fmt.Errorf("dimension %q: %w", ref, err)
		}
		rect.R2 = max(rect.R2, c.Row)
		rect.C2 = max(rect.C2, c.Col)
	}

	return rect, true, nil
}
