// Package test collects small assertion helpers shared by every package's
// unit tests in this module. It intentionally mirrors a small, closed API
// surface rather than wrapping a general-purpose assertion library, so that
// test failures read as plain Go statements instead of framework output.
package test

import (
	"math"
	"reflect"
	"testing"
)

// Equate fails the test unless a and b are equal, by reflect.DeepEqual for
// everything except errors, which are compared by their Error() string (or
// both-nil).
func Equate(t *testing.T, a, b interface{}) {
	t.Helper()

	if equateErrors(a, b) {
		return
	}

	if !reflect.DeepEqual(a, b) {
		t.Errorf("not equal: %#v != %#v", a, b)
	}
}

func equateErrors(a, b interface{}) bool {
	ae, aIsErr := a.(error)
	be, bIsErr := b.(error)
	if !aIsErr && !bIsErr {
		return false
	}
	if !aIsErr || !bIsErr {
		return false
	}
	if ae == nil && be == nil {
		return true
	}
	if ae == nil || be == nil {
		return false
	}
	return ae.Error() == be.Error()
}

// isFailure reports whether v represents a failed outcome: a false bool, or
// a non-nil error. Anything else is considered a success.
func isFailure(v interface{}) bool {
	switch x := v.(type) {
	case bool:
		return !x
	case error:
		return x != nil
	case nil:
		return false
	default:
		return false
	}
}

// ExpectFailure fails the test unless v represents a failed outcome.
func ExpectFailure(t *testing.T, v interface{}) {
	t.Helper()
	if !isFailure(v) {
		t.Errorf("expected failure, got %#v", v)
	}
}

// ExpectSuccess fails the test unless v represents a successful outcome.
func ExpectSuccess(t *testing.T, v interface{}) {
	t.Helper()
	if isFailure(v) {
		t.Errorf("expected success, got %#v", v)
	}
}

// ExpectedFailure is an alias for ExpectFailure, kept because some callers
// in this tree were written against that name.
func ExpectedFailure(t *testing.T, v interface{}) {
	t.Helper()
	ExpectFailure(t, v)
}

// ExpectedSuccess is an alias for ExpectSuccess, kept because some callers
// in this tree were written against that name.
func ExpectedSuccess(t *testing.T, v interface{}) {
	t.Helper()
	ExpectSuccess(t, v)
}

// ExpectEquality fails the test unless a and b are equal.
func ExpectEquality(t *testing.T, a, b interface{}) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("expected equality: %#v != %#v", a, b)
	}
}

// ExpectInequality fails the test unless a and b are unequal.
func ExpectInequality(t *testing.T, a, b interface{}) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Errorf("expected inequality: %#v == %#v", a, b)
	}
}

// ExpectApproximate fails the test unless a and b are within tolerance of
// one another.
func ExpectApproximate(t *testing.T, a, b, tolerance float64) {
	t.Helper()
	if math.Abs(a-b) > tolerance {
		t.Errorf("expected %f to be within %f of %f", a, tolerance, b)
	}
}
