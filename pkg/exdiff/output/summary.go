package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/ukaji3/exdiff-go/pkg/exdiff/models"
)

// SummaryOptions controls the comparison summary.
type SummaryOptions struct {
	// Limit caps the cells listed per sheet. Zero lists all of them.
	Limit int
	// Color enables ANSI colours regardless of the terminal.
	Color bool
}

// palette colours summary fragments. The zero value leaves text untouched.
type palette struct {
	title, removed, added, sheet, faint *color.Color
}

func newPalette(enabled bool) palette {
	if !enabled {
		return palette{}
	}
	p := palette{
		title:   color.New(color.Bold),
		removed: color.New(color.FgRed),
		added:   color.New(color.FgGreen),
		sheet:   color.New(color.FgCyan, color.Bold),
		faint:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.title, p.removed, p.added, p.sheet, p.faint} {
		c.EnableColor()
	}
	return p
}

func paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// WriteSummary writes a human readable account of report. nameA and nameB
// label the two workbooks.
func WriteSummary(w io.Writer, report *models.Report, nameA, nameB string, opts SummaryOptions) error {
	ew := &errWriter{w: w}
	p := newPalette(opts.Color)

	ew.println(paint(p.title, "Excel File Comparison Summary"))
	ew.printf("File 1: %s\n", nameA)
	ew.printf("File 2: %s\n", nameB)
	ew.printf("Equality: %s\n", report.Equality)
	ew.println(separator)
	ew.println("")

	if !report.HasDifferences() {
		ew.println("No differences found between the files (including sheet structure).")
		return ew.err
	}

	writeStructure(ew, p, report.Partition)
	writeCellDifferences(ew, p, report, opts.Limit)

	return ew.err
}

func writeStructure(ew *errWriter, p palette, part models.Partition) {
	ew.println(paint(p.title, "--- I. Sheet Structure Overview ---"))

	if len(part.Common) > 0 {
		ew.printf("Sheets with the same name in BOTH files %s\n", countedList(part.Common))
	} else {
		ew.println("No sheets found with the same name in both files.")
	}
	if len(part.OnlyA) > 0 {
		ew.println(paint(p.removed, "Sheets found ONLY in File 1 "+countedList(part.OnlyA)))
	} else {
		ew.println("No sheets found only in File 1.")
	}
	if len(part.OnlyB) > 0 {
		ew.println(paint(p.added, "Sheets found ONLY in File 2 "+countedList(part.OnlyB)))
	} else {
		ew.println("No sheets found only in File 2.")
	}
	ew.println("")
}

func writeCellDifferences(ew *errWriter, p palette, report *models.Report, limit int) {
	ew.println(paint(p.title, "--- II. Detailed Cell Differences (in Common Sheets) ---"))

	if len(report.Sheets) == 0 {
		if len(report.Partition.Common) > 0 {
			ew.println("No differences found in cell values or formulas within common sheets.")
			ew.printf("(Compared sheets: %s)\n", strings.Join(report.Partition.Common, ", "))
		} else {
			ew.println("No common sheets to compare cells within.")
		}
		return
	}

	for _, name := range report.SheetNames() {
		entries := report.Sheets[name]
		ew.println("")
		ew.println(paint(p.sheet, "--- Differences in Sheet: "+name+" ---"))

		shown := entries
		if limit > 0 && len(entries) > limit {
			shown = entries[:limit]
		}
		for _, e := range shown {
			ew.printf("  Cell: %s (%s)\n", e.Coordinate, differsText(e))
			ew.println(paint(p.removed, "    File 1: "+sideText(e.A)))
			ew.println(paint(p.added, "    File 2: "+sideText(e.B)))
		}
		if hidden := len(entries) - len(shown); hidden > 0 {
			ew.println(paint(p.faint, fmt.Sprintf("  ... and %d more differing cells", hidden)))
		}
	}
}

func differsText(e models.Entry) string {
	switch {
	case e.ValueDiffers && e.FormulaDiffers:
		return "value and formula differ"
	case e.FormulaDiffers:
		return "formula differs"
	default:
		return "value differs"
	}
}
