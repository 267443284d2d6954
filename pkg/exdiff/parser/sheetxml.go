package parser

import (
	"bytes"
	"encoding/xml"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// usedRange is the extent of the cell elements stored in a worksheet part.
type usedRange struct {
	maxRow int
	maxCol int
}

func (u usedRange) empty() bool {
	return u.maxRow == 0 || u.maxCol == 0
}

// scanUsedRanges maps each sheet name to the extent of its stored <c>
// elements. Declared dimensions are not trusted on their own since some
// writers leave them at "A1". Unreadable parts are left out of the result.
func scanUsedRanges(fsys fs.FS) map[string]usedRange {
	result := make(map[string]usedRange)
	for sheetName, part := range worksheetParts(fsys) {
		data, err := fs.ReadFile(fsys, part)
		if err != nil {
			continue
		}
		result[sheetName] = scanSheetCells(data)
	}
	return result
}

// scanSheetCells walks <row>/<c> elements. Cells without an "r" attribute
// follow the previous cell in the same row.
func scanSheetCells(data []byte) usedRange {
	var ur usedRange
	row, col := 0, 0

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "row":
			row++
			col = 0
			if v, ok := attr(se, "r"); ok {
				if n, err := strconv.Atoi(v); err == nil {
					row = n
				}
			}
		case "c":
			col++
			if ref, ok := attr(se, "r"); ok {
				if c, r, err := excelize.CellNameToCoordinates(ref); err == nil {
					col, row = c, r
				}
			}
			ur.maxRow = max(ur.maxRow, row)
			ur.maxCol = max(ur.maxCol, col)
		}
	}

	return ur
}

func attr(se xml.StartElement, local string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

type workbookPart struct {
	Sheets []struct {
		Name string `xml:"name,attr"`
		RID  string `xml:"id,attr"`
	} `xml:"sheets>sheet"`
}

type relationshipsPart struct {
	Relationships []struct {
		ID     string `xml:"Id,attr"`
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// worksheetParts resolves every worksheet named in xl/workbook.xml to its
// part name through the workbook relationships. Chartsheets and dialog
// sheets have no cells and are not returned.
func worksheetParts(fsys fs.FS) map[string]string {
	var wb workbookPart
	if err := decodePart(fsys, "xl/workbook.xml", &wb); err != nil {
		return nil
	}
	var rels relationshipsPart
	if err := decodePart(fsys, "xl/_rels/workbook.xml.rels", &rels); err != nil {
		return nil
	}

	targets := make(map[string]string, len(rels.Relationships))
	for _, rel := range rels.Relationships {
		if strings.HasSuffix(rel.Type, "/worksheet") {
			targets[rel.ID] = partName("xl", rel.Target)
		}
	}

	parts := make(map[string]string, len(wb.Sheets))
	for _, sheet := range wb.Sheets {
		if part, ok := targets[sheet.RID]; ok {
			parts[sheet.Name] = part
		}
	}
	return parts
}

func decodePart(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}
	return xml.Unmarshal(data, v)
}

// partName resolves a relationship target against the directory of the part
// that owns the relationship. Absolute targets are rooted at the package.
func partName(baseDir, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(baseDir, target)
}
