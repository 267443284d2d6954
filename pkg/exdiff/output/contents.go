package output

import (
	"io"

	"github.com/ukaji3/exdiff-go/pkg/exdiff/models"
)

// WriteContents writes a text listing of every tracked cell of wb. Sheets
// appear in workbook order and cells in row-major order.
func WriteContents(w io.Writer, wb *models.WorkbookData) error {
	ew := &errWriter{w: w}

	ew.printf("Content Dump for Excel File: %s\n", wb.BookName)
	ew.println(separator)
	ew.println("")

	if len(wb.SheetOrder) == 0 {
		ew.println("No sheets or data found in the file.")
	} else {
		ew.printf("Sheets found %s\n", countedList(wb.SheetOrder))
	}
	for _, warning := range wb.Warnings {
		ew.printf("Skipped sheet %q: %s\n", warning.Sheet, warning.Message)
	}
	ew.println("")

	for _, name := range wb.SheetOrder {
		sheet := wb.Sheets[name]
		ew.printf("--- Sheet: %s ---\n", name)

		if sheet.Len() == 0 {
			ew.printf("  %s\n\n", emptySheetText)
			continue
		}
		for _, coord := range sheet.Coordinates() {
			ew.printf("  %-*s: %s\n", coordinateColumn, coord.String(), cellText(sheet.Cells[coord]))
		}
		ew.println("")
	}

	return ew.err
}
