package parser

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func flakyOpener(failures int) (Opener, *int) {
	calls := 0
	return func(path string) (*Views, error) {
		calls++
		if calls <= failures {
			return nil, fmt.Errorf("attempt %d: file busy", calls)
		}
		return newFakeViews(), nil
	}, &calls
}

func TestOpenWithRetrySucceedsAfterTransientFailures(t *testing.T) {
	log, hook := test.NewNullLogger()
	open, calls := flakyOpener(2)

	views, attempts, err := OpenWithRetry(context.Background(), "book.xlsx", open, RetryPolicy{MaxAttempts: 3}, log)
	if err != nil {
		t.Fatalf("OpenWithRetry failed: %v", err)
	}
	defer views.Close()

	if attempts != 3 || *calls != 3 {
		t.Errorf("attempts = %d, calls = %d, expected 3", attempts, *calls)
	}
	if len(hook.Entries) != 2 {
		t.Errorf("expected 2 retry warnings, got %d", len(hook.Entries))
	}
	for _, entry := range hook.Entries {
		if entry.Level != logrus.WarnLevel || entry.Data["path"] != "book.xlsx" {
			t.Errorf("unexpected log entry: %v %v", entry.Level, entry.Data)
		}
	}
}

func TestOpenWithRetryReturnsLastError(t *testing.T) {
	log, _ := test.NewNullLogger()
	open, calls := flakyOpener(10)

	_, attempts, err := OpenWithRetry(context.Background(), "book.xlsx", open, RetryPolicy{MaxAttempts: 4}, log)
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 4 || *calls != 4 {
		t.Errorf("attempts = %d, calls = %d, expected 4", attempts, *calls)
	}
	if err.Error() != "attempt 4: file busy" {
		t.Errorf("expected last error, got %v", err)
	}
}

func TestOpenWithRetrySingleAttempt(t *testing.T) {
	log, hook := test.NewNullLogger()
	open, calls := flakyOpener(1)

	_, _, err := OpenWithRetry(context.Background(), "book.xlsx", open, RetryPolicy{MaxAttempts: 1}, log)
	if err == nil {
		t.Fatal("expected error")
	}
	if *calls != 1 || len(hook.Entries) != 0 {
		t.Errorf("calls = %d, log entries = %d", *calls, len(hook.Entries))
	}
}

func TestOpenWithRetryInvalidPolicy(t *testing.T) {
	log, _ := test.NewNullLogger()
	open, calls := flakyOpener(0)

	if _, _, err := OpenWithRetry(context.Background(), "x.xlsx", open, RetryPolicy{}, log); err == nil {
		t.Error("expected error for zero attempts")
	}
	if _, _, err := OpenWithRetry(context.Background(), "x.xlsx", open, RetryPolicy{MaxAttempts: 1, Delay: -1}, log); err == nil {
		t.Error("expected error for negative delay")
	}
	if *calls != 0 {
		t.Errorf("opener must not run for an invalid policy, ran %d times", *calls)
	}
}

func TestOpenWithRetryCanceled(t *testing.T) {
	log, _ := test.NewNullLogger()
	open, _ := flakyOpener(10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := OpenWithRetry(ctx, "book.xlsx", open, RetryPolicy{MaxAttempts: 5}, log)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

type closeRecorder struct {
	closed *int
	err    error
}

func (c closeRecorder) Close() error {
	*c.closed++
	return c.err
}

func TestViewsCloseReleasesAllHandles(t *testing.T) {
	closed := 0
	views := NewViews(nil, nil,
		closeRecorder{closed: &closed, err: errors.New("first")},
		closeRecorder{closed: &closed},
	)

	err := views.Close()
	if err == nil {
		t.Error("expected the first close error to be reported")
	}
	if closed != 2 {
		t.Errorf("expected both handles closed, got %d", closed)
	}
	if err := views.Close(); err != nil || closed != 2 {
		t.Errorf("second Close should be a no-op, err=%v closed=%d", err, closed)
	}
}
