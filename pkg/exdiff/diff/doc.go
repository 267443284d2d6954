// Package diff provides an Engine that compares two workbook models and
// reports which sheets exist on only one side and which cells of the shared
// sheets differ in value or formula.
//
// Value comparison follows an explicit Equality policy. Formula comparison is
// always exact text equality.
package diff
