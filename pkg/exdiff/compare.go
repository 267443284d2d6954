package exdiff

import (
	"context"

	"github.com/ukaji3/exdiff-go/pkg/exdiff/diff"
	"github.com/ukaji3/exdiff-go/pkg/exdiff/models"
	"golang.org/x/sync/errgroup"
)

// Result holds both extracted workbooks and the report comparing them.
type Result struct {
	A      *models.WorkbookData
	B      *models.WorkbookData
	Report *models.Report
}

// Compare reads the workbooks at pathA and pathB and compares them.
// The two reads share nothing and run concurrently.
func Compare(ctx context.Context, pathA, pathB string, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var a, b *models.WorkbookData
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		wb, err := ReadWorkbook(groupCtx, pathA, opts)
		a = wb
		return err
	})
	group.Go(func() error {
		wb, err := ReadWorkbook(groupCtx, pathB, opts)
		b = wb
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	report, err := CompareModels(a, b, opts.Equality)
	if err != nil {
		return nil, err
	}

	return &Result{A: a, B: b, Report: report}, nil
}

// CompareModels compares two already extracted workbooks.
// It fails with ErrInputDataMissing if either is nil.
func CompareModels(a, b *models.WorkbookData, equality Equality) (*models.Report, error) {
	return diff.NewEngine(equality).Compare(a, b)
}
