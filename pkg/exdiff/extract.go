package exdiff

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/exdiff-go/pkg/exdiff/models"
	"github.com/ukaji3/exdiff-go/pkg/exdiff/parser"
)

// ReadWorkbook extracts the formula and cached value of every cell of every
// sheet in the workbook at path.
//
// If the workbook cannot be opened within opts.Retry the result is nil and the
// error is a *ReadError. Sheets that exist in the formula lens but not in the
// value lens are skipped and recorded as warnings.
func ReadWorkbook(ctx context.Context, path string, opts Options) (*models.WorkbookData, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.logger().WithField("path", path)

	views, attempts, err := parser.OpenWithRetry(ctx, path, opts.opener(), opts.Retry, log)
	if err != nil {
		return nil, &ReadError{Path: path, Attempts: attempts, Err: err}
	}
	defer func() {
		if closeErr := views.Close(); closeErr != nil {
			log.WithError(closeErr).Warn("failed to release workbook views")
		}
	}()

	return ReadWorkbookFromViews(ctx, filepath.Base(path), views, opts)
}

// ReadWorkbookFromViews builds the workbook model from already opened views.
// The caller keeps ownership of views.
func ReadWorkbookFromViews(
	ctx context.Context,
	bookName string,
	views *parser.Views,
	opts Options,
) (*models.WorkbookData, error) {
	log := opts.logger().WithField("book", bookName)
	wb := models.NewWorkbookData(bookName)

	valueSheets := views.Value.SheetList()

	// The formula lens decides which sheets exist and in what order.
	for _, sheetName := range views.Formula.SheetList() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sheetLog := log.WithField("sheet", sheetName)

		if !slices.Contains(valueSheets, sheetName) {
			warning := models.Warning{
				Sheet:   sheetName,
				Kind:    models.WarningSheetViewMismatch,
				Message: "sheet found in formula view but not value view, skipping",
			}
			wb.Warnings = append(wb.Warnings, warning)
			sheetLog.Warn(warning.Message)
			continue
		}

		data, err := parser.ExtractCells(views, sheetName, opts.Sparse)
		if err != nil {
			return nil, &ExtractionError{Book: bookName, Sheet: sheetName, Err: err}
		}

		sheetLog.WithFields(logrus.Fields{"cells": data.Len()}).Debug("processed sheet")
		wb.AddSheet(sheetName, data)
	}

	if len(wb.SheetOrder) == 0 {
		log.Warn("no sheets found")
	}

	return wb, nil
}

// MustReadWorkbook is like ReadWorkbook but panics on error.
// Intended for tests and fixtures.
func MustReadWorkbook(path string, opts Options) *models.WorkbookData {
	wb, err := ReadWorkbook(context.Background(), path, opts)
	if err != nil {
		panic(fmt.Sprintf("exdiff: read %s: %v", path, err))
	}
	return wb
}
