package parser

import (
	"errors"
	"io"
	"path/filepath"
	"reflect"
	"testing"
)

// namedCloser appends its name to log when closed.
type namedCloser struct {
	name string
	log  *[]string
}

func (c namedCloser) Close() error {
	*c.log = append(*c.log, c.name)
	return nil
}

func TestAcquireAllUnwindsOnFailure(t *testing.T) {
	var closed []string
	openErr := errors.New("value view: permission denied")

	handles, err := acquireAll(
		func() (io.Closer, error) { return namedCloser{"formula", &closed}, nil },
		func() (io.Closer, error) { return namedCloser{"archive", &closed}, nil },
		func() (io.Closer, error) { return nil, openErr },
		func() (io.Closer, error) {
			t.Error("opens after a failure must not run")
			return namedCloser{"late", &closed}, nil
		},
	)

	if !errors.Is(err, openErr) {
		t.Fatalf("expected the open error, got %v", err)
	}
	if handles != nil {
		t.Errorf("expected no handles, got %v", handles)
	}
	if expected := []string{"archive", "formula"}; !reflect.DeepEqual(closed, expected) {
		t.Errorf("closed = %v, expected %v", closed, expected)
	}
}

func TestAcquireAllKeepsHandlesOnSuccess(t *testing.T) {
	var closed []string

	handles, err := acquireAll(
		func() (io.Closer, error) { return namedCloser{"formula", &closed}, nil },
		func() (io.Closer, error) { return namedCloser{"value", &closed}, nil },
	)
	if err != nil {
		t.Fatalf("acquireAll failed: %v", err)
	}
	if len(handles) != 2 {
		t.Errorf("expected 2 handles, got %d", len(handles))
	}
	if len(closed) != 0 {
		t.Errorf("nothing should be closed yet, got %v", closed)
	}
}

func TestOpenExcelizeMissingFile(t *testing.T) {
	views, err := OpenExcelize(filepath.Join(t.TempDir(), "missing.xlsx"))
	if err == nil {
		views.Close()
		t.Fatal("expected an error for a missing workbook")
	}
	if views != nil {
		t.Errorf("expected nil views, got %+v", views)
	}
}
