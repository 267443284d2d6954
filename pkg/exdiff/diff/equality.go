package diff

import (
	"fmt"
	"strings"

	"github.com/ukaji3/exdiff-go/pkg/exdiff/models"
)

// Equality is the value comparison policy.
type Equality = models.Equality

const (
	// EqualityTyped requires equal tags and payloads. Integer 10 and float
	// 10.0 are different values.
	EqualityTyped = models.EqualityTyped
	// EqualityDisplay compares rendered text. Integer 10, float 10.0 and the
	// string "10" are the same value.
	EqualityDisplay = models.EqualityDisplay
)

// ParseEquality maps a configuration string onto a policy.
func ParseEquality(s string) (Equality, error) {
	switch Equality(strings.ToLower(strings.TrimSpace(s))) {
	case EqualityTyped:
		return EqualityTyped, nil
	case EqualityDisplay:
		return EqualityDisplay, nil
	default:
		return "", fmt.Errorf("unknown equality policy %q (must be typed or display)", s)
	}
}

// ValuesEqual compares the values of two sides under policy. A missing side
// only equals another missing side, so an absent coordinate never matches a
// tracked blank cell.
func ValuesEqual(policy Equality, a, b models.Side) bool {
	if a.Missing || b.Missing {
		return a.Missing == b.Missing
	}
	if policy == EqualityDisplay {
		return a.Value.Display() == b.Value.Display()
	}
	return a.Value.Equal(b.Value)
}

// FormulasEqual compares formula text exactly. A missing side has no formula.
func FormulasEqual(a, b models.Side) bool {
	return a.Formula == b.Formula
}
