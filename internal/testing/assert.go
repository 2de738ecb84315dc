package testing

import (
	"errors"
	"reflect"
	"testing"
)

// Success asserts that error did not occur.
func Success(t testing.TB, err error) {
	t.Helper()

	if err != nil || !isNil(err) {
		t.Fatalf("expected success, got '%v'", err)
	}
}

// Equal asserts that values are deeply equal.
func Equal[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// ErrorIs asserts that err matches target.
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()

	if !errors.Is(err, target) {
		t.Fatalf("expected error '%v' to match '%v'", err, target)
	}
}

// Panics asserts that f panics with an error matching target.
func Panics(t testing.TB, target error, f func()) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}

		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("expected panic value '%v' to match '%v'", r, target)
		}
	}()

	f()
}

func isNil(a interface{}) bool {
	if a == nil {
		return true
	}

	switch reflect.TypeOf(a).Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return reflect.ValueOf(a).IsNil()
	}

	return false
}
