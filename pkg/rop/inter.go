package rop

import (
	"context"
	"time"
)

// Operation is a unit of work that produces a T or fails.
type Operation[T any] func(ctx context.Context) (T, error)

type ValueProvider[T any] interface {
	// Value returns the payload of a successful outcome
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithMessage defines an interface for outcomes that carry a value or an error message
type WithMessage[T any] interface {
	ValueProvider[T]
	// Message returns the error text if the operation failed
	Message() string
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

var _ WithMessage[int] = Outcome[int]{}
