package rop

import (
	"fmt"
)

// Fault is the normalized shape of anything that can go wrong inside an
// operation: a returned error or a recovered panic.
type Fault struct {
	message  string
	cause    error
	panicked bool
}

func FaultFromError(err error) Fault {
	if IsNil(err) {
		return Fault{cause: err}
	}
	return Fault{message: errorText(err), cause: err}
}

func FaultFromPanic(v any) Fault {
	f := Fault{panicked: true}

	switch x := v.(type) {
	case nil:
	case error:
		f.cause = x
		if !IsNil(x) {
			f.message = errorText(x)
		}
	case string:
		f.message = x
	case fmt.Stringer:
		f.message = stringerText(x)
	default:
		f.message = fmt.Sprint(x)
	}

	return f
}

// Message may be empty; use HasMessage to tell.
func (f Fault) Message() string {
	return f.message
}

func (f Fault) HasMessage() bool {
	return f.message != ""
}

func (f Fault) Panicked() bool {
	return f.panicked
}

func (f Fault) Cause() error {
	return f.cause
}

// errorText treats a panicking Error method the same as an empty message.
func errorText(err error) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = ""
		}
	}()
	return err.Error()
}

func stringerText(s fmt.Stringer) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = ""
		}
	}()
	if IsNil(s) {
		return ""
	}
	return s.String()
}

// OperationFailed is the only error kind surfaced by a failed Outcome.
type OperationFailed struct {
	Message string
}

func (e *OperationFailed) Error() string {
	return e.Message
}
