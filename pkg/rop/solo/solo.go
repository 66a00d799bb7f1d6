package solo

import (
	"context"

	"github.com/ib-77/safecall/pkg/rop"
	"github.com/ib-77/safecall/pkg/rop/safe"
)

func Match[In, Out any](ctx context.Context, input rop.Outcome[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, message string) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onError(ctx, input.Message())
}

func Map[In, Out any](ctx context.Context, input rop.Outcome[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Outcome[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Value()))
	}
	return rop.ErrorFrom[In, Out](input)
}

func Switch[In, Out any](ctx context.Context, input rop.Outcome[In],
	onSuccess func(ctx context.Context, r In) rop.Outcome[Out]) rop.Outcome[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return rop.ErrorFrom[In, Out](input)
}

// Try runs the next step under the same fault handling as safe.Call.
func Try[In, Out any](ctx context.Context, input rop.Outcome[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Outcome[Out] {

	if !input.IsSuccess() {
		return rop.ErrorFrom[In, Out](input)
	}

	r := input.Value()
	return safe.Call(ctx, func(ctx context.Context) (Out, error) {
		return onTryExecute(ctx, r)
	})
}

func Tee[T any](ctx context.Context, input rop.Outcome[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, message string)) rop.Outcome[T] {

	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(ctx, input.Value())
		}
	} else if onError != nil {
		onError(ctx, input.Message())
	}

	return input
}

func OrElse[T any](input rop.Outcome[T], fallback T) T {
	if v, ok := input.Get(); ok {
		return v
	}
	return fallback
}
