package core

import "context"

type OptionKey string

const (
	WorkerOptionKey   OptionKey = "worker_options"
	ObserverOptionKey OptionKey = "observer_options"
)

type MaxLimitOption struct {
	Value int
}
type WorkerOptions struct {
	MaxCount MaxLimitOption
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

// GetWorkerMaxCount falls back to defaultMaxWorkers when no option is set
// or the stored value is not positive.
func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func WithObserver(ctx context.Context, observer Observer) context.Context {
	return context.WithValue(ctx, ObserverOptionKey, observer)
}

// ObserverFrom returns nil when no observer is attached.
func ObserverFrom(ctx context.Context) Observer {
	observer, ok := ctx.Value(ObserverOptionKey).(Observer)
	if ok {
		return observer
	}
	return nil
}
