package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Report describes one finished wrapped call.
type Report struct {
	Id        uuid.UUID
	Success   bool
	Cancelled bool
	Panicked  bool
	Message   string
	Duration  time.Duration
}

type Observer interface {
	Observe(ctx context.Context, report Report)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(ctx context.Context, report Report)

func (f ObserverFunc) Observe(ctx context.Context, report Report) {
	f(ctx, report)
}
