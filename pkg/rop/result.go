package rop

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// DefaultErrorMessage replaces a missing or empty fault message.
const DefaultErrorMessage = "An unexpected error occurred"

// Outcome is either a success carrying the value produced by an operation
// or an error carrying a human-readable message. It is never both.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	message   string
	isSuccess bool
}

func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Error builds the error variant. An empty message is replaced by
// DefaultErrorMessage.
func Error[T any](message string) Outcome[T] {
	if message == "" {
		message = DefaultErrorMessage
	}
	return Outcome[T]{
		message:   message,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func FromFault[T any](f Fault) Outcome[T] {
	return Error[T](f.Message())
}

// ErrorFrom carries the message of a failed outcome over to another payload type.
func ErrorFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	return Outcome[Out]{
		message:   from.Message(),
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (o Outcome[T]) Value() T {
	return o.value
}

// Message is empty for the success variant.
func (o Outcome[T]) Message() string {
	if o.isSuccess {
		return ""
	}
	if o.message == "" {
		return DefaultErrorMessage
	}
	return o.message
}

func (o Outcome[T]) Get() (T, bool) {
	return o.value, o.isSuccess
}

func (o Outcome[T]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T]) IsError() bool {
	return !o.isSuccess
}

func (o Outcome[T]) Err() error {
	if o.isSuccess {
		return nil
	}
	return &OperationFailed{Message: o.Message()}
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}

// Equivalent compares variant, value and message. Id and creation time are ignored.
func (o Outcome[T]) Equivalent(other Outcome[T]) bool {
	if o.isSuccess != other.isSuccess {
		return false
	}
	if o.isSuccess {
		return reflect.DeepEqual(o.value, other.value)
	}
	return o.Message() == other.Message()
}

func (o Outcome[T]) String() string {
	if o.isSuccess {
		return fmt.Sprintf("Success(%v)", o.value)
	}
	return fmt.Sprintf("Error(%q)", o.Message())
}
