// Package output renders workbook models and comparison reports as JSON or
// plain text.
package output

import (
	"encoding/json"

	"github.com/ukaji3/exdiff-go/pkg/exdiff/models"
)

// Comparison is the JSON document written for a comparison run.
type Comparison struct {
	FileA  string         `json:"file_a"`
	FileB  string         `json:"file_b"`
	Report *models.Report `json:"report"`
	// Warnings collects the read warnings of both workbooks.
	Warnings []models.Warning `json:"warnings,omitempty"`
}

// NewComparison builds the JSON document for a report of a against b.
func NewComparison(a, b *models.WorkbookData, report *models.Report) Comparison {
	doc := Comparison{
		FileA:  a.BookName,
		FileB:  b.BookName,
		Report: report,
	}
	doc.Warnings = append(doc.Warnings, a.Warnings...)
	doc.Warnings = append(doc.Warnings, b.Warnings...)
	return doc
}

// ToJSON serializes v to JSON.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
