package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/exdiff-go/pkg/exdiff/models"
)

const (
	separator = "========================================"

	emptyValueText   = "<empty>"
	missingSideText  = "[missing]"
	emptySheetText   = "[Sheet is empty or contains no tracked data]"
	coordinateColumn = 8
)

// errWriter remembers the first write error so renderers can write line by
// line and check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	ew.printf("%s\n", s)
}

// cellText renders a cell as "Value = x" with ", Formula = =..." appended when
// the cell holds a formula.
func cellText(c models.Cell) string {
	var b strings.Builder
	b.WriteString("Value = ")
	b.WriteString(valueText(c.Value))
	if c.Formula != "" {
		b.WriteString(", Formula = ")
		b.WriteString(c.Formula)
	}
	return b.String()
}

func valueText(v models.Value) string {
	if v.IsEmpty() {
		return emptyValueText
	}
	return v.Literal()
}

func sideText(s models.Side) string {
	if s.Missing {
		return missingSideText
	}
	return cellText(s.Cell)
}

func countedList(names []string) string {
	return fmt.Sprintf("(%d): %s", len(names), strings.Join(names, ", "))
}
