// Package testutil provides shared test utilities for the rules engine:
// go-cmp based assertions and helpers for building positions from diagrams.
package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		reportf(t, msgAndArgs, "mismatch (-want +got):\n%s", diff)
	}
}

// AssertSquares compares two square sets, ignoring order.
func AssertSquares(t *testing.T, got, want []chess.Square, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, squareSetOptions...); diff != "" {
		reportf(t, msgAndArgs, "square set mismatch (-want +got):\n%s", diff)
	}
}

// AssertMoves compares two move sets, ignoring order.
func AssertMoves(t *testing.T, got, want []chess.Move, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, moveSetOptions...); diff != "" {
		reportf(t, msgAndArgs, "move set mismatch (-want +got):\n%s", diff)
	}
}

var (
	squareSetOptions = []cmp.Option{
		cmpopts.SortSlices(squareLess),
		cmpopts.EquateEmpty(),
	}
	moveSetOptions = []cmp.Option{
		cmpopts.SortSlices(func(a, b chess.Move) bool {
			if a.From != b.From {
				return squareLess(a.From, b.From)
			}
			return squareLess(a.To, b.To)
		}),
		cmpopts.EquateEmpty(),
	}
)

func squareLess(a, b chess.Square) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		reportf(t, msgAndArgs, "unexpected error: %v", err)
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		reportf(t, msgAndArgs, "error = %v; want %v", err, target)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		reportf(t, msgAndArgs, "expected true but got false")
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		reportf(t, msgAndArgs, "expected false but got true")
	}
}

// reportf reports a failure, prefixed with the optional caller message.
func reportf(t *testing.T, msgAndArgs []interface{}, format string, args ...interface{}) {
	t.Helper()
	detail := fmt.Sprintf(format, args...)
	if msg := formatMessage(msgAndArgs...); msg != "" {
		t.Errorf("%s: %s", msg, detail)
		return
	}
	t.Error(detail)
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
