// Package exdiff reads the formulas and cached values of .xlsx workbooks and
// compares two workbooks cell by cell.
package exdiff

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/exdiff-go/pkg/exdiff/diff"
	"github.com/ukaji3/exdiff-go/pkg/exdiff/parser"
)

// RetryPolicy bounds how often a workbook open is attempted.
type RetryPolicy = parser.RetryPolicy

// Equality is the value comparison policy.
type Equality = diff.Equality

const (
	// EqualityTyped treats integer 10 and float 10.0 as different values.
	EqualityTyped = diff.EqualityTyped
	// EqualityDisplay compares values by their rendered text.
	EqualityDisplay = diff.EqualityDisplay
)

const (
	defaultMaxAttempts = 3
	defaultRetryDelay  = 500 * time.Millisecond
)

// Options configures reading and comparison.
type Options struct {
	// Retry bounds attempts to open each workbook.
	Retry RetryPolicy
	// Equality selects how cell values are compared.
	Equality Equality
	// Sparse skips coordinates with neither a value nor a formula.
	// The default stores every coordinate of the declared rectangle so both
	// sides of a comparison cover the same cells.
	Sparse bool
	// Logger receives warnings and progress. If nil, logrus.StandardLogger() is used.
	Logger logrus.FieldLogger
	// Opener acquires the two lenses of a workbook. If nil, parser.OpenExcelize is used.
	Opener parser.Opener
}

// DefaultOptions returns default options: 3 attempts 500ms apart, typed
// equality, dense reads.
func DefaultOptions() Options {
	return Options{
		Retry: RetryPolicy{
			MaxAttempts: defaultMaxAttempts,
			Delay:       defaultRetryDelay,
		},
		Equality: EqualityTyped,
	}
}

// ZeroDelayRetry returns a policy making n attempts without waiting.
func ZeroDelayRetry(n int) RetryPolicy {
	return RetryPolicy{MaxAttempts: n}
}

// Validate checks the options.
func (o Options) Validate() error {
	var errs []error
	if err := o.Retry.Validate(); err != nil {
		errs = append(errs, err)
	}
	if o.Equality != EqualityTyped && o.Equality != EqualityDisplay {
		errs = append(errs, fmt.Errorf("unknown equality policy %q", o.Equality))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	return nil
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}

func (o Options) opener() parser.Opener {
	if o.Opener != nil {
		return o.Opener
	}
	return parser.OpenExcelize
}
