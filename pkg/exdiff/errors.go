package exdiff

import (
	"errors"
	"fmt"

	"github.com/ukaji3/exdiff-go/pkg/exdiff/diff"
	"github.com/ukaji3/exdiff-go/pkg/exdiff/models"
)

// ErrReadFailure indicates a workbook could not be opened within the retry policy.
var ErrReadFailure = errors.New("read failure")

// ErrInputDataMissing indicates a comparison was requested with an absent model.
var ErrInputDataMissing = diff.ErrInputDataMissing

// ErrMalformedCoordinate indicates invalid cell reference text.
var ErrMalformedCoordinate = models.ErrMalformedCoordinate

// ErrInvalidOptions indicates unusable Options.
var ErrInvalidOptions = errors.New("invalid options")

// ReadError reports a workbook that could not be opened.
// It matches ErrReadFailure and unwraps to the last underlying error.
type ReadError struct {
	Path     string
	Attempts int
	Err      error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read failure for %q after %d attempt(s): %v", e.Path, e.Attempts, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrReadFailure) true for any ReadError.
func (e *ReadError) Is(target error) bool {
	return target == ErrReadFailure
}

// ExtractionError reports a sheet that could not be read after its workbook
// was opened. The partially built model is discarded.
type ExtractionError struct {
	Book  string
	Sheet string
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s: sheet %q: %v", e.Book, e.Sheet, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
