package parser

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ukaji3/exdiff-go/pkg/exdiff/models"
	"github.com/xuri/excelize/v2"
)

// OpenExcelize opens path twice, once per lens, so that the formula lens and
// the value lens never share a handle. The formula lens also keeps a zip reader
// to measure the stored cell extent of each sheet.
func OpenExcelize(path string) (*Views, error) {
	var (
		formulaFile, valueFile *excelize.File
		archive                *zip.ReadCloser
	)

	handles, err := acquireAll(
		func() (io.Closer, error) {
			f, err := excelize.OpenFile(path)
			if err != nil {
				return nil, fmt.Errorf("open formula view: %w", err)
			}
			formulaFile = f
			return f, nil
		},
		func() (io.Closer, error) {
			r, err := zip.OpenReader(path)
			if err != nil {
				return nil, fmt.Errorf("open formula view: %w", err)
			}
			archive = r
			return r, nil
		},
		func() (io.Closer, error) {
			f, err := excelize.OpenFile(path)
			if err != nil {
				return nil, fmt.Errorf("open value view: %w", err)
			}
			valueFile = f
			return f, nil
		},
	)
	if err != nil {
		return nil, err
	}

	formula := &formulaLens{f: formulaFile, used: scanUsedRanges(&archive.Reader)}
	value := &valueLens{f: valueFile}

	return NewViews(formula, value, handles...), nil
}

// acquireAll runs each open in order. When one fails, the handles already
// acquired are closed in reverse order and the open error is returned.
func acquireAll(opens ...func() (io.Closer, error)) ([]io.Closer, error) {
	handles := make([]io.Closer, 0, len(opens))
	for _, open := range opens {
		h, err := open()
		if err != nil {
			for i := len(handles) - 1; i >= 0; i-- {
				_ = handles[i].Close()
			}
			return nil, err
		}
		handles = append(handles, h)
	}
	return handles, nil
}

// formulaLens reads stored formulas and literals.
type formulaLens struct {
	f    *excelize.File
	used map[string]usedRange
}

func (l *formulaLens) SheetList() []string {
	return l.f.GetSheetList()
}

// Dimension merges the declared dimension with the scanned cell extent.
// A sheet without any stored cell reports "".
func (l *formulaLens) Dimension(sheet string) (string, error) {
	declared, err := l.f.GetSheetDimension(sheet)
	if err != nil {
		return "", err
	}

	ur, scanned := l.used[sheet]
	if !scanned {
		return declared, nil
	}
	if ur.empty() {
		return "", nil
	}

	rect, ok, err := ParseDimension(declared)
	if err != nil || !ok {
		rect = models.Rect{R1: 1, C1: 1}
	}
	maxRow := max(rect.R2, ur.maxRow)
	maxCol := max(rect.C2, ur.maxCol)

	end, err := excelize.CoordinatesToCellName(maxCol, maxRow)
	if err != nil {
		return "", err
	}
	return "A1:" + end, nil
}

func (l *formulaLens) RawContent(sheet, cell string) (string, error) {
	formula, err := l.f.GetCellFormula(sheet, cell)
	if err != nil {
		return "", err
	}
	if formula != "" {
		return models.FormulaSigil + strings.TrimPrefix(formula, models.FormulaSigil), nil
	}
	return l.f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
}

// valueLens reads cached values.
type valueLens struct {
	f *excelize.File
}

func (l *valueLens) SheetList() []string {
	return l.f.GetSheetList()
}

func (l *valueLens) CachedValue(sheet, cell string) (models.Value, error) {
	raw, err := l.f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Empty(), err
	}
	cellType, err := l.f.GetCellType(sheet, cell)
	if err != nil {
		return models.Empty(), err
	}
	return classifyValue(cellType, raw), nil
}

// classifyValue maps a stored cell type and raw cached text onto the four
// value kinds. A cell without stored text is Empty whatever its type, except
// a shared string, whose table entry may genuinely be "".
func classifyValue(cellType excelize.CellType, raw string) models.Value {
	if raw == "" && cellType != excelize.CellTypeSharedString {
		return models.Empty()
	}

	switch cellType {
	case excelize.CellTypeBool:
		return models.Bool(raw == "1" || strings.EqualFold(raw, "true"))
	case excelize.CellTypeDate:
		if v, ok := dateSerial(raw); ok {
			return v
		}
		return models.String(raw)
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return models.String(raw)
	}

	return parseValue(raw)
}

// excelEpoch is serial day 0 of the 1900 date system.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// leapBugCutoff is the first day whose serial includes the phantom
// 1900-02-29 that spreadsheet applications count.
var leapBugCutoff = time.Date(1900, time.March, 1, 0, 0, 0, 0, time.UTC)

var isoDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// dateSerial converts the ISO 8601 text of a t="d" cell to its 1900 date
// system serial so that it compares like a numerically stored date.
func dateSerial(raw string) (models.Value, bool) {
	for _, layout := range isoDateLayouts {
		ts, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		wall := time.Date(ts.Year(), ts.Month(), ts.Day(),
			ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), time.UTC)

		elapsed := wall.Sub(excelEpoch)
		if wall.Before(leapBugCutoff) {
			elapsed -= 24 * time.Hour
		}
		if elapsed%(24*time.Hour) == 0 {
			return models.Integer(int64(elapsed / (24 * time.Hour))), true
		}
		return models.Number(elapsed.Hours() / 24), true
	}
	return models.Value{}, false
}
