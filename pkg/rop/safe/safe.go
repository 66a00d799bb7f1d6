package safe

import (
	"context"
	"time"

	logging "github.com/ipfs/go-log/v2"

	"github.com/ib-77/safecall/pkg/rop"
	"github.com/ib-77/safecall/pkg/rop/core"
)

var log = logging.Logger("safecall")

func Call[T any](ctx context.Context, op rop.Operation[T]) rop.Outcome[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	v, fault, failed := invoke(ctx, op)
	return finish(ctx, start, v, fault, failed)
}

func CallFunc[T any](op func() (T, error)) rop.Outcome[T] {
	return Call(context.Background(), func(context.Context) (T, error) {
		return op()
	})
}

// CallCancellable returns a nil error and the outcome for everything except
// cancellation. When ctx is already done the operation is not started.
func CallCancellable[T any](ctx context.Context, op rop.Operation[T]) (rop.Outcome[T], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return rop.Outcome[T]{}, err
	}

	start := time.Now()
	v, fault, failed := invoke(ctx, op)

	if failed && isCancellation(fault) {
		finish(ctx, start, v, fault, failed)
		return rop.Outcome[T]{}, fault.Cause()
	}

	return finish(ctx, start, v, fault, failed), nil
}

func invoke[T any](ctx context.Context, op rop.Operation[T]) (v T, fault rop.Fault, failed bool) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v, fault, failed = zero, rop.FaultFromPanic(r), true
			log.Warnw("operation panicked", "panic", fault.Message())
		}
	}()

	if op == nil {
		return v, rop.Fault{}, true
	}

	res, err := op(ctx)
	if err != nil {
		return v, rop.FaultFromError(err), true
	}
	return res, rop.Fault{}, false
}

func isCancellation(fault rop.Fault) bool {
	return !fault.Panicked() && rop.IsCancellationError(fault.Cause())
}

func finish[T any](ctx context.Context, start time.Time, v T, fault rop.Fault, failed bool) rop.Outcome[T] {
	cancelled := failed && isCancellation(fault)

	var out rop.Outcome[T]
	if failed {
		out = rop.FromFault[T](fault)
	} else {
		out = rop.Success(v)
	}

	elapsed := time.Since(start)
	if failed {
		log.Debugw("operation failed", "id", out.Id(), "message", out.Message(),
			"cancelled", cancelled, "elapsed", elapsed)
	} else {
		log.Debugw("operation succeeded", "id", out.Id(), "elapsed", elapsed)
	}

	if observer := core.ObserverFrom(ctx); observer != nil {
		notify(ctx, observer, core.Report{
			Id:        out.Id(),
			Success:   out.IsSuccess(),
			Cancelled: cancelled,
			Panicked:  fault.Panicked(),
			Message:   out.Message(),
			Duration:  elapsed,
		})
	}

	return out
}

func notify(ctx context.Context, observer core.Observer, report core.Report) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("observer panicked", "panic", r, "id", report.Id)
		}
	}()
	observer.Observe(ctx, report)
}
