package rop

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type record struct {
	Id   int
	Name string
	Tags []string
}

type stringer struct{ s string }

func (s stringer) String() string { return s.s }

func TestSuccess(t *testing.T) {
	t.Parallel()
	out := Success(record{Id: 1, Name: "Test", Tags: []string{"a"}})

	if !out.IsSuccess() || out.IsError() {
		t.Fatalf("expected success variant, got: %v", out)
	}
	if v := out.Value(); v.Id != 1 || v.Name != "Test" || len(v.Tags) != 1 {
		t.Fatalf("unexpected value: %+v", v)
	}
	if out.Message() != "" || out.Err() != nil {
		t.Fatalf("success must carry no message, got %q, err=%v", out.Message(), out.Err())
	}
	if v, ok := out.Get(); !ok || v.Name != "Test" {
		t.Fatalf("Get returned %+v, %v", v, ok)
	}
}

func TestError_EmptyMessageFallsBack(t *testing.T) {
	t.Parallel()
	out := Error[int]("")
	if !out.IsError() || out.Message() != DefaultErrorMessage {
		t.Fatalf("expected fallback message, got %q", out.Message())
	}
	if out.Err() == nil || out.Err().Error() != DefaultErrorMessage {
		t.Fatalf("expected OperationFailed with fallback, got %v", out.Err())
	}
}

func TestError_KeepsMessage(t *testing.T) {
	t.Parallel()
	out := Error[string]("Test Error")
	if out.Message() != "Test Error" {
		t.Fatalf("expected 'Test Error', got %q", out.Message())
	}
	var failed *OperationFailed
	if !errors.As(out.Err(), &failed) || failed.Message != "Test Error" {
		t.Fatalf("expected *OperationFailed, got %T", out.Err())
	}
	if _, ok := out.Get(); ok {
		t.Fatalf("Get must report false for error variant")
	}
}

func TestZeroOutcomeIsError(t *testing.T) {
	t.Parallel()
	var out Outcome[int]
	if out.IsSuccess() || out.Message() != DefaultErrorMessage {
		t.Fatalf("zero outcome should read as error with fallback, got %v", out)
	}
}

func TestErrorFrom(t *testing.T) {
	t.Parallel()
	in := Error[int]("bad input")
	out := ErrorFrom[int, string](in)
	if out.IsSuccess() || out.Message() != "bad input" || out.Id() != in.Id() {
		t.Fatalf("expected carried error, got %v (id %v vs %v)", out, out.Id(), in.Id())
	}
}

func TestEquivalent(t *testing.T) {
	t.Parallel()
	a := Success(record{Id: 1, Name: "Test", Tags: []string{"x"}})
	b := Success(record{Id: 1, Name: "Test", Tags: []string{"x"}})
	c := Success(record{Id: 2, Name: "Test"})

	if !a.Equivalent(b) {
		t.Fatalf("expected equal payloads to be equivalent")
	}
	if a.Equivalent(c) {
		t.Fatalf("expected different payloads to differ")
	}
	if a.Id() == b.Id() {
		t.Fatalf("each outcome needs its own id")
	}
	if !Error[record]("x").Equivalent(Error[record]("x")) {
		t.Fatalf("expected same messages to be equivalent")
	}
	if Error[record]("x").Equivalent(Success(record{})) {
		t.Fatalf("variants must differ")
	}
}

func TestString(t *testing.T) {
	t.Parallel()
	if s := Success(42).String(); s != "Success(42)" {
		t.Fatalf("got %s", s)
	}
	if s := Error[int]("Test Error").String(); s != `Error("Test Error")` {
		t.Fatalf("got %s", s)
	}
}

func TestCreatedAtIsUTC(t *testing.T) {
	t.Parallel()
	if loc := Success(1).CreatedAt().Location(); loc.String() != "UTC" {
		t.Fatalf("expected UTC, got %s", loc)
	}
}

func TestFaultFromError(t *testing.T) {
	t.Parallel()
	var typedNil *OperationFailed

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"plain", errors.New("Test Error"), "Test Error"},
		{"empty", errors.New(""), ""},
		{"typed nil", typedNil, ""},
		{"nil", nil, ""},
		{"wrapped", fmt.Errorf("outer: %w", errors.New("inner")), "outer: inner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FaultFromError(tt.err)
			if f.Message() != tt.want || f.HasMessage() != (tt.want != "") || f.Panicked() {
				t.Fatalf("unexpected fault: msg=%q has=%v panicked=%v", f.Message(), f.HasMessage(), f.Panicked())
			}
			if FromFault[int](f).Message() == "" {
				t.Fatalf("outcome message must never be empty")
			}
		})
	}
}

func TestFaultFromPanic(t *testing.T) {
	t.Parallel()
	cause := errors.New("cause")

	tests := []struct {
		name string
		v    any
		want string
	}{
		{"error", cause, "cause"},
		{"string", "boom", "boom"},
		{"stringer", stringer{"str"}, "str"},
		{"int", 7, "7"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FaultFromPanic(tt.v)
			if !f.Panicked() || f.Message() != tt.want {
				t.Fatalf("unexpected fault: msg=%q panicked=%v", f.Message(), f.Panicked())
			}
		})
	}

	if !errors.Is(FaultFromPanic(cause).Cause(), cause) {
		t.Fatalf("expected cause to be kept")
	}
}

func TestIsCancellationError(t *testing.T) {
	t.Parallel()
	if !IsCancellationError(context.Canceled) || !IsCancellationError(fmt.Errorf("x: %w", context.DeadlineExceeded)) {
		t.Fatalf("expected context errors to be cancellation")
	}
	if IsCancellationError(errors.New("other")) || IsCancellationError(nil) {
		t.Fatalf("expected other errors not to be cancellation")
	}
}

func TestGetErrors(t *testing.T) {
	t.Parallel()
	joined := errors.Join(errors.New("a"), errors.New("b"))
	if n := len(GetErrors(joined)); n != 2 {
		t.Fatalf("expected 2 errors, got %d", n)
	}
	if n := len(GetErrors(nil)); n != 0 {
		t.Fatalf("expected no errors, got %d", n)
	}
	if n := len(GetErrors(errors.New("one"))); n != 1 {
		t.Fatalf("expected 1 error, got %d", n)
	}
}
